package middleware

import (
	"github.com/gin-gonic/gin"

	"preparos/internal/domain/profile"
	"preparos/internal/shared/constants"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/utils"
)

// ProfileMiddleware blocks data routes until the signed-in user has
// completed a profile.
type ProfileMiddleware struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewProfileMiddleware(profileRepo profile.Repository, logger logger.Interface) *ProfileMiddleware {
	return &ProfileMiddleware{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (m *ProfileMiddleware) RequireProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.CurrentUserID(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		p, err := m.profileRepo.GetByUserID(c.Request.Context(), userID)
		switch {
		case errors.IsNotFoundError(err):
			abortWithError(c, errors.NewProfileRequiredError(constants.ErrMsgProfileRequired))
			return
		case err != nil:
			m.logger.Errorw("failed to load profile", "error", err, "user_id", userID)
			abortWithError(c, err)
			return
		case !p.IsComplete():
			abortWithError(c, errors.NewProfileRequiredError(constants.ErrMsgProfileRequired))
			return
		}

		c.Next()
	}
}
