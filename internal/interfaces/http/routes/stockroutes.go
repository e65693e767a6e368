package routes

import (
	"github.com/gin-gonic/gin"

	"preparos/internal/infrastructure/permission"
	"preparos/internal/interfaces/http/handlers"
	batchHandlers "preparos/internal/interfaces/http/handlers/batch"
	reportHandlers "preparos/internal/interfaces/http/handlers/report"
	sessionHandlers "preparos/internal/interfaces/http/handlers/session"
	transferHandlers "preparos/internal/interfaces/http/handlers/transfer"
	"preparos/internal/interfaces/http/middleware"
)

// StockRouteConfig holds dependencies for the stock and ledger routes.
type StockRouteConfig struct {
	BatchHandler         *batchHandlers.Handler
	SessionHandler       *sessionHandlers.Handler
	TransferHandler      *transferHandlers.Handler
	ReportHandler        *reportHandlers.Handler
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	ProfileMiddleware    *middleware.ProfileMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupStockRoutes configures batch, session, transfer, report and
// dashboard routes. All of them require a session and a complete profile.
func SetupStockRoutes(api *gin.RouterGroup, cfg *StockRouteConfig) {
	perm := cfg.PermissionMiddleware

	gated := api.Group("")
	gated.Use(cfg.AuthMiddleware.RequireAuth(), cfg.ProfileMiddleware.RequireProfile())

	gated.GET("/dashboard", perm.RequirePermission(permission.ResourceBatch, permission.ActionRead), cfg.DashboardHandler.GetDashboard)

	batches := gated.Group("/batches")
	{
		batches.GET("", perm.RequirePermission(permission.ResourceBatch, permission.ActionRead), cfg.BatchHandler.ListStock)
		batches.POST("", perm.RequirePermission(permission.ResourceBatch, permission.ActionWrite), cfg.BatchHandler.CreateBatch)
		batches.GET("/available", perm.RequirePermission(permission.ResourceBatch, permission.ActionRead), cfg.BatchHandler.ListAvailable)
		batches.GET("/:id", perm.RequirePermission(permission.ResourceBatch, permission.ActionRead), cfg.BatchHandler.GetBatch)
		batches.PUT("/:id", perm.RequirePermission(permission.ResourceBatch, permission.ActionWrite), cfg.BatchHandler.UpdateBatch)
		batches.DELETE("/:id", perm.RequirePermission(permission.ResourceBatch, permission.ActionDelete), cfg.BatchHandler.DeleteBatch)
	}

	sessions := gated.Group("/sessions")
	{
		sessions.GET("", perm.RequirePermission(permission.ResourceSession, permission.ActionRead), cfg.SessionHandler.ListSessions)
		sessions.POST("", perm.RequirePermission(permission.ResourceSession, permission.ActionWrite), cfg.SessionHandler.CreateSession)
		sessions.GET("/:id", perm.RequirePermission(permission.ResourceSession, permission.ActionRead), cfg.SessionHandler.GetSession)
		sessions.PUT("/:id", perm.RequirePermission(permission.ResourceSession, permission.ActionWrite), cfg.SessionHandler.UpdateSession)
		sessions.DELETE("/:id", perm.RequirePermission(permission.ResourceSession, permission.ActionDelete), cfg.SessionHandler.DeleteSession)
	}

	transfers := gated.Group("/transfers")
	{
		transfers.GET("", perm.RequirePermission(permission.ResourceTransfer, permission.ActionRead), cfg.TransferHandler.ListTransfers)
		transfers.POST("", perm.RequirePermission(permission.ResourceTransfer, permission.ActionWrite), cfg.TransferHandler.CreateTransfer)
		transfers.GET("/:id", perm.RequirePermission(permission.ResourceTransfer, permission.ActionRead), cfg.TransferHandler.GetTransfer)
		transfers.PUT("/:id", perm.RequirePermission(permission.ResourceTransfer, permission.ActionWrite), cfg.TransferHandler.UpdateTransfer)
		transfers.DELETE("/:id", perm.RequirePermission(permission.ResourceTransfer, permission.ActionDelete), cfg.TransferHandler.DeleteTransfer)
	}

	reports := gated.Group("/reports")
	reports.Use(perm.RequirePermission(permission.ResourceReport, permission.ActionRead))
	{
		reports.GET("", cfg.ReportHandler.GetReport)
		reports.GET("/export", cfg.ReportHandler.ExportReport)
	}
}
