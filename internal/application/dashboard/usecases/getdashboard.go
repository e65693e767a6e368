package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"preparos/internal/application/balance"
	sessiondto "preparos/internal/application/session/dto"
	sessionusecases "preparos/internal/application/session/usecases"
	"preparos/internal/domain/session"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/logger"
)

const recentSessionsLimit = 3

type DashboardDTO struct {
	TotalAvailable   decimal.Decimal                 `json:"total_available"`
	SessionsThisYear int64                           `json:"sessions_this_year"`
	Year             int                             `json:"year"`
	RecentSessions   []*sessiondto.SessionSummaryDTO `json:"recent_sessions"`
}

type GetDashboardUseCase struct {
	sessionRepo session.Repository
	calculator  *balance.Calculator
	logger      logger.Interface
}

func NewGetDashboardUseCase(sessionRepo session.Repository, calculator *balance.Calculator, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		sessionRepo: sessionRepo,
		calculator:  calculator,
		logger:      logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*DashboardDTO, error) {
	available, err := uc.calculator.TotalAvailable(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute total available", "error", err)
		return nil, err
	}

	year := biztime.Today().Year()
	_, yearCount, err := uc.sessionRepo.List(ctx, session.ListFilter{
		From:     biztime.StartOfYearUTC(year),
		To:       biztime.StartOfYearUTC(year + 1),
		Page:     1,
		PageSize: 1,
	})
	if err != nil {
		uc.logger.Errorw("failed to count sessions of the year", "error", err)
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	recent, _, err := uc.sessionRepo.List(ctx, session.ListFilter{Page: 1, PageSize: recentSessionsLimit})
	if err != nil {
		uc.logger.Errorw("failed to list recent sessions", "error", err)
		return nil, fmt.Errorf("failed to list recent sessions: %w", err)
	}
	totals, err := sessionusecases.SessionTotals(ctx, uc.sessionRepo, recent)
	if err != nil {
		return nil, err
	}

	items := make([]*sessiondto.SessionSummaryDTO, 0, len(recent))
	for _, s := range recent {
		items = append(items, sessiondto.ToSessionSummaryDTO(s, totals[s.ID()]))
	}

	return &DashboardDTO{
		TotalAvailable:   available,
		SessionsThisYear: yearCount,
		Year:             year,
		RecentSessions:   items,
	}, nil
}
