package routes

import (
	"github.com/gin-gonic/gin"

	"preparos/internal/interfaces/http/handlers"
	"preparos/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for auth, profile and changelog routes.
type AuthRouteConfig struct {
	AuthHandler      *handlers.AuthHandler
	ProfileHandler   *handlers.ProfileHandler
	ChangelogHandler *handlers.ChangelogHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoginRateLimit   *middleware.RateLimitMiddleware
}

// SetupAuthRoutes configures the routes that only need a signed-in caller.
// Profile routes stay reachable without a complete profile so a new user
// can create one.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", cfg.LoginRateLimit.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/session", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetSession)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetMe)
	}

	profile := api.Group("/profile")
	profile.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profile.GET("", cfg.ProfileHandler.GetProfile)
		profile.PUT("", cfg.ProfileHandler.UpdateProfile)
	}

	changelog := api.Group("/changelog")
	changelog.Use(cfg.AuthMiddleware.RequireAuth())
	{
		changelog.GET("", cfg.ChangelogHandler.GetChangelog)
		changelog.POST("/ack", cfg.ChangelogHandler.Acknowledge)
	}
}
