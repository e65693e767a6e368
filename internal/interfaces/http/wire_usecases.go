package http

import (
	"time"

	authUsecases "preparos/internal/application/auth/usecases"
	batchUsecases "preparos/internal/application/batch/usecases"
	changelogUsecases "preparos/internal/application/changelog/usecases"
	dashboardUsecases "preparos/internal/application/dashboard/usecases"
	profileUsecases "preparos/internal/application/profile/usecases"
	reportUsecases "preparos/internal/application/report/usecases"
	sessionUsecases "preparos/internal/application/session/usecases"
	transferUsecases "preparos/internal/application/transfer/usecases"
	"preparos/internal/infrastructure/changelog"
	"preparos/internal/infrastructure/export"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth & profile
	loginUC         *authUsecases.LoginUseCase
	logoutUC        *authUsecases.LogoutUseCase
	getAuthSession  *authUsecases.GetSessionUseCase
	getMeUC         *authUsecases.GetMeUseCase
	getProfileUC    *profileUsecases.GetProfileUseCase
	updateProfileUC *profileUsecases.UpdateProfileUseCase
	getChangelogUC  *changelogUsecases.GetChangelogUseCase
	acknowledgeUC   *changelogUsecases.AcknowledgeUseCase

	// Stock
	createBatchUC   *batchUsecases.CreateBatchUseCase
	updateBatchUC   *batchUsecases.UpdateBatchUseCase
	deleteBatchUC   *batchUsecases.DeleteBatchUseCase
	getBatchUC      *batchUsecases.GetBatchUseCase
	listStockUC     *batchUsecases.ListStockUseCase
	listAvailableUC *batchUsecases.ListAvailableUseCase

	// Sessions
	createSessionUC *sessionUsecases.CreateSessionUseCase
	updateSessionUC *sessionUsecases.UpdateSessionUseCase
	deleteSessionUC *sessionUsecases.DeleteSessionUseCase
	getSessionUC    *sessionUsecases.GetSessionUseCase
	listSessionsUC  *sessionUsecases.ListSessionsUseCase

	// Transfers
	createTransferUC *transferUsecases.CreateTransferUseCase
	updateTransferUC *transferUsecases.UpdateTransferUseCase
	deleteTransferUC *transferUsecases.DeleteTransferUseCase
	getTransferUC    *transferUsecases.GetTransferUseCase
	listTransfersUC  *transferUsecases.ListTransfersUseCase

	// Reporting
	getDashboardUC *dashboardUsecases.GetDashboardUseCase
	getReportUC    *reportUsecases.GetReportUseCase
	exportReportUC *reportUsecases.ExportReportUseCase
}

func (c *Container) initUseCases() {
	log := c.log
	r := c.repos
	sessionTTL := time.Duration(c.cfg.Auth.Session.TTLHours) * time.Hour
	changelogSource := changelog.NewEmbeddedSource()
	workbook := export.NewReportWorkbook(c.cfg.Stock.Unit)

	c.ucs = &allUseCases{
		loginUC:         authUsecases.NewLoginUseCase(r.userRepo, r.sessionStore, c.hasher, c.jwtService, sessionTTL, log),
		logoutUC:        authUsecases.NewLogoutUseCase(r.sessionStore, log),
		getAuthSession:  authUsecases.NewGetSessionUseCase(r.sessionStore),
		getMeUC:         authUsecases.NewGetMeUseCase(r.userRepo, r.profileRepo),
		getProfileUC:    profileUsecases.NewGetProfileUseCase(r.profileRepo),
		updateProfileUC: profileUsecases.NewUpdateProfileUseCase(r.profileRepo, log),
		getChangelogUC:  changelogUsecases.NewGetChangelogUseCase(changelogSource, r.profileRepo, c.markdown, log),
		acknowledgeUC:   changelogUsecases.NewAcknowledgeUseCase(changelogSource, r.profileRepo, log),

		createBatchUC:   batchUsecases.NewCreateBatchUseCase(r.batchRepo, log),
		updateBatchUC:   batchUsecases.NewUpdateBatchUseCase(r.batchRepo, log),
		deleteBatchUC:   batchUsecases.NewDeleteBatchUseCase(r.batchRepo, c.txManager, log),
		getBatchUC:      batchUsecases.NewGetBatchUseCase(r.batchRepo, r.sessionRepo, r.transferRepo, c.calculator.Threshold(), log),
		listStockUC:     batchUsecases.NewListStockUseCase(r.batchRepo, c.calculator, log),
		listAvailableUC: batchUsecases.NewListAvailableUseCase(r.batchRepo),

		createSessionUC: sessionUsecases.NewCreateSessionUseCase(r.sessionRepo, r.batchRepo, c.txManager, log),
		updateSessionUC: sessionUsecases.NewUpdateSessionUseCase(r.sessionRepo, r.batchRepo, c.txManager, log),
		deleteSessionUC: sessionUsecases.NewDeleteSessionUseCase(r.sessionRepo, log),
		getSessionUC:    sessionUsecases.NewGetSessionUseCase(r.sessionRepo),
		listSessionsUC:  sessionUsecases.NewListSessionsUseCase(r.sessionRepo, log),

		createTransferUC: transferUsecases.NewCreateTransferUseCase(r.transferRepo, r.batchRepo, c.markdown, log),
		updateTransferUC: transferUsecases.NewUpdateTransferUseCase(r.transferRepo, r.batchRepo, c.markdown, log),
		deleteTransferUC: transferUsecases.NewDeleteTransferUseCase(r.transferRepo, log),
		getTransferUC:    transferUsecases.NewGetTransferUseCase(r.transferRepo),
		listTransfersUC:  transferUsecases.NewListTransfersUseCase(r.transferRepo, log),

		getDashboardUC: dashboardUsecases.NewGetDashboardUseCase(r.sessionRepo, c.calculator, log),
		getReportUC:    reportUsecases.NewGetReportUseCase(r.sessionRepo, r.transferRepo, log),
		exportReportUC: reportUsecases.NewExportReportUseCase(r.sessionRepo, r.transferRepo, workbook, log),
	}
}
