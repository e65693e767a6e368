package middleware

import (
	"github.com/gin-gonic/gin"

	"preparos/internal/shared/constants"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

// Authorizer decides whether a role may perform action on resource.
type Authorizer interface {
	Enforce(role string, resource string, action string) (bool, error)
}

type PermissionMiddleware struct {
	authorizer Authorizer
	logger     logger.Interface
}

func NewPermissionMiddleware(authorizer Authorizer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		authorizer: authorizer,
		logger:     logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			abortWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			return
		}

		allowed, err := m.authorizer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			abortWithError(c, errors.NewInternalError("permission check failed"))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", c.Value(constants.ContextKeyUserID),
				"role", role,
				"resource", resource,
				"action", action)
			abortWithError(c, errors.NewForbiddenError(constants.ErrMsgForbidden))
			return
		}

		c.Next()
	}
}
