package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"preparos/internal/application/auth/usecases"
	"preparos/internal/shared/config"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

type getSessionUseCase interface {
	Execute(ctx context.Context, query usecases.GetSessionQuery) (*usecases.SessionDTO, error)
}

type getMeUseCase interface {
	Execute(ctx context.Context, query usecases.GetMeQuery) (*usecases.MeDTO, error)
}

type AuthHandler struct {
	loginUseCase      loginUseCase
	logoutUseCase     logoutUseCase
	getSessionUseCase getSessionUseCase
	getMeUseCase      getMeUseCase
	cookieConfig      config.CookieConfig
	logger            logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	getSessionUC getSessionUseCase,
	getMeUC getMeUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:      loginUC,
		logoutUseCase:     logoutUC,
		getSessionUseCase: getSessionUC,
		getMeUseCase:      getMeUC,
		cookieConfig:      cookieConfig,
		logger:            logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
//
//	@Summary		Sign in
//	@Description	Signs in with email and password. The access token is set as an HttpOnly cookie and returned in the body.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest		true	"Credentials"
//	@Success		200			{object}	utils.APIResponse
//	@Failure		401			{object}	utils.APIResponse
//	@Failure		429			{object}	utils.APIResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAccessTokenCookie(c, h.cookieConfig, result.AccessToken, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user": gin.H{
			"id":    result.User.ID(),
			"email": result.User.Email(),
			"role":  result.User.Role(),
		},
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := utils.CurrentSessionID(c)
	if sessionID == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("session not found"))
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		h.logger.Errorw("logout failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAccessTokenCookie(c, h.cookieConfig)

	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

// GetSession handles GET /auth/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	result, err := h.getSessionUseCase.Execute(c.Request.Context(), usecases.GetSessionQuery{
		SessionID: utils.CurrentSessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetMe handles GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMeUseCase.Execute(c.Request.Context(), usecases.GetMeQuery{UserID: userID})
	if err != nil {
		h.logger.Errorw("failed to get current user", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
