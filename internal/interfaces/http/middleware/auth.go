package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"preparos/internal/domain/user"
	"preparos/internal/infrastructure/auth"
	"preparos/internal/shared/constants"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware accepts an access token from the cookie or a Bearer
// header. The token is only honoured while its server session exists.
type AuthMiddleware struct {
	tokens   TokenVerifier
	sessions user.SessionRepository
	logger   logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, sessions user.SessionRepository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)
		if token == "" {
			authHeader := c.GetHeader(constants.HeaderAuthorization)
			if authHeader == "" {
				abortWithError(c, errors.NewUnauthorizedError("missing authorization token"))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				abortWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
				return
			}
			token = parts[1]
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
			abortWithError(c, errors.NewTokenInvalidError())
			return
		}

		userID, err := uuid.Parse(claims.UserUUID)
		if err != nil {
			abortWithError(c, errors.NewTokenInvalidError())
			return
		}

		session, err := m.sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				m.logger.Errorw("failed to load session", "error", err, "session_id", claims.SessionID)
				abortWithError(c, err)
				return
			}
			abortWithError(c, errors.NewSessionExpiredError())
			return
		}
		if session.UserID != userID {
			m.logger.Warnw("token and session disagree on user", "session_id", claims.SessionID)
			abortWithError(c, errors.NewTokenInvalidError())
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Set(constants.ContextKeyUserRole, string(session.Role))

		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}
