package http

import (
	"preparos/internal/interfaces/http/handlers"
	batchHandlers "preparos/internal/interfaces/http/handlers/batch"
	reportHandlers "preparos/internal/interfaces/http/handlers/report"
	sessionHandlers "preparos/internal/interfaces/http/handlers/session"
	transferHandlers "preparos/internal/interfaces/http/handlers/transfer"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler      *handlers.AuthHandler
	profileHandler   *handlers.ProfileHandler
	changelogHandler *handlers.ChangelogHandler
	dashboardHandler *handlers.DashboardHandler
	healthHandler    *handlers.HealthHandler

	batchHandler    *batchHandlers.Handler
	sessionHandler  *sessionHandlers.Handler
	transferHandler *transferHandlers.Handler
	reportHandler   *reportHandlers.Handler
}

func (c *Container) initHandlers() {
	log := c.log
	u := c.ucs

	c.hdlrs = &allHandlers{
		authHandler:      handlers.NewAuthHandler(u.loginUC, u.logoutUC, u.getAuthSession, u.getMeUC, c.cfg.Auth.Cookie, log),
		profileHandler:   handlers.NewProfileHandler(u.getProfileUC, u.updateProfileUC, log),
		changelogHandler: handlers.NewChangelogHandler(u.getChangelogUC, u.acknowledgeUC),
		dashboardHandler: handlers.NewDashboardHandler(u.getDashboardUC, log),
		healthHandler:    handlers.NewHealthHandler(c.db, c.redis),

		batchHandler: batchHandlers.NewHandler(
			u.createBatchUC, u.updateBatchUC, u.deleteBatchUC,
			u.getBatchUC, u.listStockUC, u.listAvailableUC, log,
		),
		sessionHandler: sessionHandlers.NewHandler(
			u.createSessionUC, u.updateSessionUC, u.deleteSessionUC,
			u.getSessionUC, u.listSessionsUC, log,
		),
		transferHandler: transferHandlers.NewHandler(
			u.createTransferUC, u.updateTransferUC, u.deleteTransferUC,
			u.getTransferUC, u.listTransfersUC, log,
		),
		reportHandler: reportHandlers.NewHandler(u.getReportUC, u.exportReportUC, log),
	}
}
