package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/profile/usecases"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

type getProfileUseCase interface {
	Execute(ctx context.Context, query usecases.GetProfileQuery) (*usecases.ProfileDTO, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*usecases.ProfileDTO, error)
}

type ProfileHandler struct {
	getProfileUseCase    getProfileUseCase
	updateProfileUseCase updateProfileUseCase
	logger               logger.Interface
}

func NewProfileHandler(getProfileUC getProfileUseCase, updateProfileUC updateProfileUseCase, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase:    getProfileUC,
		updateProfileUseCase: updateProfileUC,
		logger:               logger,
	}
}

// UpdateProfileRequest is the body of PUT /profile. An empty theme keeps
// the current one.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Theme    string `json:"theme" binding:"omitempty,oneof=light dark system"`
}

// GetProfile handles GET /profile
//
//	@Summary		Get profile
//	@Tags			profile
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse
//	@Failure		404	{object}	utils.APIResponse	"No profile yet"
//	@Router			/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PUT /profile
//
//	@Summary		Save profile
//	@Description	Creates or updates the caller's profile
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			profile	body		UpdateProfileRequest	true	"Profile data"
//	@Success		200		{object}	utils.APIResponse
//	@Failure		400		{object}	utils.APIResponse
//	@Router			/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:   userID,
		FullName: req.FullName,
		Theme:    req.Theme,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile saved successfully", result)
}
