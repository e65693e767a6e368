package transfer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/transfer/usecases"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

type Handler struct {
	createTransferUC usecases.CreateTransferExecutor
	updateTransferUC usecases.UpdateTransferExecutor
	deleteTransferUC usecases.DeleteTransferExecutor
	getTransferUC    usecases.GetTransferExecutor
	listTransfersUC  usecases.ListTransfersExecutor
	logger           logger.Interface
}

func NewHandler(
	createTransferUC usecases.CreateTransferExecutor,
	updateTransferUC usecases.UpdateTransferExecutor,
	deleteTransferUC usecases.DeleteTransferExecutor,
	getTransferUC usecases.GetTransferExecutor,
	listTransfersUC usecases.ListTransfersExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createTransferUC: createTransferUC,
		updateTransferUC: updateTransferUC,
		deleteTransferUC: deleteTransferUC,
		getTransferUC:    getTransferUC,
		listTransfersUC:  listTransfersUC,
		logger:           logger,
	}
}

// ListTransfers handles GET /transfers
//
//	@Summary		List transfers
//	@Tags			transfers
//	@Produce		json
//	@Security		Bearer
//	@Param			batch_id	query		int					false	"Only transfers of this batch"
//	@Param			start		query		string				false	"First day, YYYY-MM-DD"
//	@Param			end			query		string				false	"Last day, YYYY-MM-DD"
//	@Param			page		query		int					false	"Page number"
//	@Param			page_size	query		int					false	"Page size"
//	@Success		200			{object}	utils.APIResponse
//	@Router			/transfers [get]
func (h *Handler) ListTransfers(c *gin.Context) {
	query, err := parseListTransfersQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTransfersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Transfers, result.Total, result.Page, result.PageSize)
}

// GetTransfer handles GET /transfers/:id
func (h *Handler) GetTransfer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "transfer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTransferUC.Execute(c.Request.Context(), usecases.GetTransferQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTransfer handles POST /transfers
//
//	@Summary		Record transfer
//	@Tags			transfers
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			transfer	body		TransferRequest		true	"Transfer data"
//	@Success		201			{object}	utils.APIResponse
//	@Failure		400			{object}	utils.APIResponse
//	@Router			/transfers [post]
func (h *Handler) CreateTransfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create transfer", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createTransferUC.Execute(c.Request.Context(), usecases.CreateTransferCommand{
		TransferInput: req.toInput(),
		CreatedBy:     utils.CurrentUserIDPtr(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Transfer recorded successfully")
}

// UpdateTransfer handles PUT /transfers/:id
func (h *Handler) UpdateTransfer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "transfer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update transfer", "transfer_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateTransferUC.Execute(c.Request.Context(), usecases.UpdateTransferCommand{
		ID:            id,
		TransferInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transfer updated successfully", result)
}

// DeleteTransfer handles DELETE /transfers/:id
func (h *Handler) DeleteTransfer(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "transfer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTransferUC.Execute(c.Request.Context(), usecases.DeleteTransferCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transfer deleted successfully", nil)
}
