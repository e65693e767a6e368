package batch

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/batch/usecases"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

type Handler struct {
	createBatchUC   usecases.CreateBatchExecutor
	updateBatchUC   usecases.UpdateBatchExecutor
	deleteBatchUC   usecases.DeleteBatchExecutor
	getBatchUC      usecases.GetBatchExecutor
	listStockUC     usecases.ListStockExecutor
	listAvailableUC usecases.ListAvailableExecutor
	logger          logger.Interface
}

func NewHandler(
	createBatchUC usecases.CreateBatchExecutor,
	updateBatchUC usecases.UpdateBatchExecutor,
	deleteBatchUC usecases.DeleteBatchExecutor,
	getBatchUC usecases.GetBatchExecutor,
	listStockUC usecases.ListStockExecutor,
	listAvailableUC usecases.ListAvailableExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createBatchUC:   createBatchUC,
		updateBatchUC:   updateBatchUC,
		deleteBatchUC:   deleteBatchUC,
		getBatchUC:      getBatchUC,
		listStockUC:     listStockUC,
		listAvailableUC: listAvailableUC,
		logger:          logger,
	}
}

// ListStock handles GET /batches
//
//	@Summary		List stock
//	@Description	Every batch with its balance, newest production date first
//	@Tags			batches
//	@Produce		json
//	@Security		Bearer
//	@Param			q	query		string				false	"Filter by preparer, grade, status or type"
//	@Success		200	{object}	utils.APIResponse
//	@Failure		401	{object}	utils.APIResponse
//	@Router			/batches [get]
func (h *Handler) ListStock(c *gin.Context) {
	result, err := h.listStockUC.Execute(c.Request.Context(), usecases.ListStockQuery{Query: c.Query("q")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAvailable handles GET /batches/available
//
//	@Summary		List available batches
//	@Description	Batches whose status is Disponível, for the session form picker
//	@Tags			batches
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse
//	@Router			/batches/available [get]
func (h *Handler) ListAvailable(c *gin.Context) {
	result, err := h.listAvailableUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetBatch handles GET /batches/:id
//
//	@Summary		Get batch
//	@Description	Batch detail with balance and movement history
//	@Tags			batches
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path		int					true	"Batch ID"
//	@Success		200	{object}	utils.APIResponse
//	@Failure		404	{object}	utils.APIResponse
//	@Router			/batches/{id} [get]
func (h *Handler) GetBatch(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "batch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getBatchUC.Execute(c.Request.Context(), usecases.GetBatchQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateBatch handles POST /batches
//
//	@Summary		Create batch
//	@Tags			batches
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			batch	body		BatchRequest		true	"Batch data"
//	@Success		201		{object}	utils.APIResponse
//	@Failure		400		{object}	utils.APIResponse
//	@Router			/batches [post]
func (h *Handler) CreateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create batch", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateBatchCommand{
		BatchInput: req.toInput(),
		CreatedBy:  utils.CurrentUserIDPtr(c),
	}

	result, err := h.createBatchUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Batch created successfully")
}

// UpdateBatch handles PUT /batches/:id
//
//	@Summary		Update batch
//	@Tags			batches
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		int					true	"Batch ID"
//	@Param			batch	body		BatchRequest		true	"Batch data"
//	@Success		200		{object}	utils.APIResponse
//	@Failure		400		{object}	utils.APIResponse
//	@Failure		404		{object}	utils.APIResponse
//	@Router			/batches/{id} [put]
func (h *Handler) UpdateBatch(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "batch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update batch", "batch_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateBatchUC.Execute(c.Request.Context(), usecases.UpdateBatchCommand{
		ID:         id,
		BatchInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Batch updated successfully", result)
}

// DeleteBatch handles DELETE /batches/:id
//
//	@Summary		Delete batch
//	@Description	Refused with 409 while sessions or transfers reference the batch, unless force=true
//	@Tags			batches
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		int					true	"Batch ID"
//	@Param			force	query		bool				false	"Also remove dependent lines and transfers"
//	@Success		200		{object}	utils.APIResponse
//	@Failure		409		{object}	utils.APIResponse
//	@Router			/batches/{id} [delete]
func (h *Handler) DeleteBatch(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "batch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteBatchUC.Execute(c.Request.Context(), usecases.DeleteBatchCommand{
		ID:    id,
		Force: utils.QueryBool(c, "force"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Batch deleted successfully", result)
}
