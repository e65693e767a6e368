package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "preparos/docs"
	"preparos/internal/interfaces/http/middleware"
	"preparos/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	api := c.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:      c.hdlrs.authHandler,
		ProfileHandler:   c.hdlrs.profileHandler,
		ChangelogHandler: c.hdlrs.changelogHandler,
		AuthMiddleware:   c.authMiddleware,
		LoginRateLimit:   c.loginRateLimit,
	})

	routes.SetupStockRoutes(api, &routes.StockRouteConfig{
		BatchHandler:         c.hdlrs.batchHandler,
		SessionHandler:       c.hdlrs.sessionHandler,
		TransferHandler:      c.hdlrs.transferHandler,
		ReportHandler:        c.hdlrs.reportHandler,
		DashboardHandler:     c.hdlrs.dashboardHandler,
		AuthMiddleware:       c.authMiddleware,
		ProfileMiddleware:    c.profileMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
