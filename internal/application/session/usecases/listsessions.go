package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"preparos/internal/application/session/dto"
	"preparos/internal/domain/session"
	"preparos/internal/shared/logger"
)

type ListSessionsQuery struct {
	Page     int
	PageSize int
}

// ListSessionsUseCase returns the session history newest first, each row
// with its total consumption.
type ListSessionsUseCase struct {
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewListSessionsUseCase(sessionRepo session.Repository, logger logger.Interface) *ListSessionsUseCase {
	return &ListSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, query ListSessionsQuery) (*dto.ListSessionsResponse, error) {
	sessions, total, err := uc.sessionRepo.List(ctx, session.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "error", err)
		return nil, err
	}

	totals, err := SessionTotals(ctx, uc.sessionRepo, sessions)
	if err != nil {
		uc.logger.Errorw("failed to load session totals", "error", err)
		return nil, err
	}

	items := make([]*dto.SessionSummaryDTO, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, dto.ToSessionSummaryDTO(s, totals[s.ID()]))
	}

	return &dto.ListSessionsResponse{
		Sessions: items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// SessionTotals sums the consumption lines of each session. Sessions
// without lines map to zero.
func SessionTotals(ctx context.Context, repo session.Repository, sessions []*session.Session) (map[uint]decimal.Decimal, error) {
	totals := make(map[uint]decimal.Decimal, len(sessions))
	if len(sessions) == 0 {
		return totals, nil
	}

	ids := make([]uint, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID())
		totals[s.ID()] = decimal.Zero
	}

	lines, err := repo.ListLines(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list consumption lines: %w", err)
	}
	for _, l := range lines {
		if _, ok := totals[l.SessionID()]; ok {
			totals[l.SessionID()] = totals[l.SessionID()].Add(l.Quantity())
		}
	}
	return totals, nil
}
