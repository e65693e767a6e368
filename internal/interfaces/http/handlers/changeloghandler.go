package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/changelog/usecases"
	"preparos/internal/shared/utils"
)

type ChangelogHandler struct {
	getChangelogUC usecases.GetChangelogExecutor
	acknowledgeUC  usecases.AcknowledgeExecutor
}

func NewChangelogHandler(getChangelogUC usecases.GetChangelogExecutor, acknowledgeUC usecases.AcknowledgeExecutor) *ChangelogHandler {
	return &ChangelogHandler{
		getChangelogUC: getChangelogUC,
		acknowledgeUC:  acknowledgeUC,
	}
}

// GetChangelog handles GET /changelog
//
//	@Summary		Changelog
//	@Description	Release notes rendered to HTML, with whether the caller has seen the latest release
//	@Tags			changelog
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse
//	@Router			/changelog [get]
func (h *ChangelogHandler) GetChangelog(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getChangelogUC.Execute(c.Request.Context(), usecases.GetChangelogQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Acknowledge handles POST /changelog/ack
func (h *ChangelogHandler) Acknowledge(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	version, err := h.acknowledgeUC.Execute(c.Request.Context(), usecases.AcknowledgeCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Changelog acknowledged", gin.H{"changelog_version": version})
}
