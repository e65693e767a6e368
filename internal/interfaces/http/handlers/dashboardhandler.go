package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/dashboard/usecases"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

// DashboardHandler serves the home screen figures.
type DashboardHandler struct {
	getDashboardUseCase usecases.GetDashboardExecutor
	logger              logger.Interface
}

func NewDashboardHandler(getDashboardUseCase usecases.GetDashboardExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUseCase: getDashboardUseCase,
		logger:              logger,
	}
}

// GetDashboard handles GET /dashboard
//
//	@Summary		Dashboard
//	@Description	Total available volume, sessions this year and the three latest sessions
//	@Tags			dashboard
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse
//	@Router			/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	result, err := h.getDashboardUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
