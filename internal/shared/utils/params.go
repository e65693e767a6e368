package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"preparos/internal/shared/constants"
	"preparos/internal/shared/errors"
)

// ParseUintParam reads a positive integer id from a URL path parameter.
// entityName is used in error messages (e.g., "batch", "session").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(id), nil
}

// QueryBool reports whether the query parameter is set to a true value.
func QueryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

// CurrentUserID returns the authenticated user id set by the auth
// middleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return uuid.Nil, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	return id, nil
}

// CurrentUserIDPtr is CurrentUserID for optional created_by columns.
func CurrentUserIDPtr(c *gin.Context) *uuid.UUID {
	id, err := CurrentUserID(c)
	if err != nil {
		return nil
	}
	return &id
}

// CurrentSessionID returns the server session id set by the auth
// middleware.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(constants.ContextKeySessionID)
}
