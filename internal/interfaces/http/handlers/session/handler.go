package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/session/usecases"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

type Handler struct {
	createSessionUC usecases.CreateSessionExecutor
	updateSessionUC usecases.UpdateSessionExecutor
	deleteSessionUC usecases.DeleteSessionExecutor
	getSessionUC    usecases.GetSessionExecutor
	listSessionsUC  usecases.ListSessionsExecutor
	logger          logger.Interface
}

func NewHandler(
	createSessionUC usecases.CreateSessionExecutor,
	updateSessionUC usecases.UpdateSessionExecutor,
	deleteSessionUC usecases.DeleteSessionExecutor,
	getSessionUC usecases.GetSessionExecutor,
	listSessionsUC usecases.ListSessionsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createSessionUC: createSessionUC,
		updateSessionUC: updateSessionUC,
		deleteSessionUC: deleteSessionUC,
		getSessionUC:    getSessionUC,
		listSessionsUC:  listSessionsUC,
		logger:          logger,
	}
}

// ListSessions handles GET /sessions
//
//	@Summary		List sessions
//	@Description	Session history newest first, each with its total consumption
//	@Tags			sessions
//	@Produce		json
//	@Security		Bearer
//	@Param			page		query		int					false	"Page number"
//	@Param			page_size	query		int					false	"Page size"
//	@Success		200			{object}	utils.APIResponse
//	@Router			/sessions [get]
func (h *Handler) ListSessions(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listSessionsUC.Execute(c.Request.Context(), usecases.ListSessionsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Sessions, result.Total, result.Page, result.PageSize)
}

// GetSession handles GET /sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSessionUC.Execute(c.Request.Context(), usecases.GetSessionQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateSession handles POST /sessions
//
//	@Summary		Record session
//	@Description	Saves the session and its consumption lines atomically
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			session	body		SessionRequest		true	"Session data"
//	@Success		201		{object}	utils.APIResponse
//	@Failure		400		{object}	utils.APIResponse
//	@Failure		500		{object}	utils.APIResponse	"Save failed; details name the failing step"
//	@Router			/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.createSessionUC.Execute(c.Request.Context(), usecases.CreateSessionCommand{
		SessionInput: req.toInput(),
		CreatedBy:    utils.CurrentUserIDPtr(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Session recorded successfully")
}

// UpdateSession handles PUT /sessions/:id
func (h *Handler) UpdateSession(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.updateSessionUC.Execute(c.Request.Context(), usecases.UpdateSessionCommand{
		ID:           id,
		SessionInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Session updated successfully", result)
}

// DeleteSession handles DELETE /sessions/:id
func (h *Handler) DeleteSession(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteSessionUC.Execute(c.Request.Context(), usecases.DeleteSessionCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Session deleted successfully", nil)
}

func (h *Handler) bind(c *gin.Context) (*SessionRequest, bool) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for session", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return nil, false
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, false
	}
	return &req, true
}
