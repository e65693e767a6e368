package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/session"
	"preparos/internal/domain/stock"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/errors"
)

// ReportQuery is an inclusive range of business-timezone calendar days.
// Empty bounds default to January 1st of the current year and today.
type ReportQuery struct {
	StartDate string
	EndDate   string
}

type SessionTotalDTO struct {
	SessionID    uint            `json:"session_id"`
	HeldAt       time.Time       `json:"held_at"`
	Type         string          `json:"type"`
	Facilitator  string          `json:"facilitator"`
	Participants int             `json:"participants"`
	Consumed     decimal.Decimal `json:"consumed"`
}

type ReportDTO struct {
	StartDate             string            `json:"start_date"`
	EndDate               string            `json:"end_date"`
	SessionCount          int               `json:"session_count"`
	TotalParticipants     int               `json:"total_participants"`
	TotalConsumed         decimal.Decimal   `json:"total_consumed"`
	AveragePerSession     decimal.Decimal   `json:"average_per_session"`
	AveragePerParticipant decimal.Decimal   `json:"average_per_participant"`
	TotalTransferred      decimal.Decimal   `json:"total_transferred"`
	Sessions              []SessionTotalDTO `json:"sessions"`
}

// reportBuilder gathers the sessions and transfers of a range and reduces
// them to a summary.
type reportBuilder struct {
	sessionRepo  session.Repository
	transferRepo transfer.Repository
}

func (b *reportBuilder) resolveRange(query ReportQuery) (start, end time.Time, err error) {
	today := biztime.Today()
	start = biztime.StartOfYear(today)
	end = today

	if query.StartDate != "" {
		if start, err = biztime.ParseDate(query.StartDate); err != nil {
			return time.Time{}, time.Time{}, errors.NewValidationError("invalid start date", err.Error())
		}
	}
	if query.EndDate != "" {
		if end, err = biztime.ParseDate(query.EndDate); err != nil {
			return time.Time{}, time.Time{}, errors.NewValidationError("invalid end date", err.Error())
		}
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, errors.NewValidationError("start date must not be after end date")
	}
	return start, end, nil
}

// build applies one rule to both record kinds: an event belongs to the
// range when its business-timezone calendar day lies within [start, end].
func (b *reportBuilder) build(ctx context.Context, start, end time.Time) (stock.Summary, error) {
	from, to := biztime.DayRangeUTC(start, end)
	sessions, _, err := b.sessionRepo.List(ctx, session.ListFilter{From: from, To: to})
	if err != nil {
		return stock.Summary{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	refs := make([]stock.SessionRef, 0, len(sessions))
	ids := make([]uint, 0, len(sessions))
	for _, s := range sessions {
		refs = append(refs, stock.SessionRef{
			ID:           s.ID(),
			HeldAt:       s.HeldAt(),
			Type:         string(s.Type()),
			Facilitator:  s.Facilitator(),
			Participants: s.Participants(),
		})
		ids = append(ids, s.ID())
	}

	quantities := make(map[uint][]decimal.Decimal, len(ids))
	if len(ids) > 0 {
		lines, err := b.sessionRepo.ListLines(ctx, ids)
		if err != nil {
			return stock.Summary{}, fmt.Errorf("failed to list consumption lines: %w", err)
		}
		for _, l := range lines {
			quantities[l.SessionID()] = append(quantities[l.SessionID()], l.Quantity())
		}
	}

	transfers, _, err := b.transferRepo.List(ctx, transfer.ListFilter{StartDate: start, EndDate: end})
	if err != nil {
		return stock.Summary{}, fmt.Errorf("failed to list transfers: %w", err)
	}
	movements := make([]stock.Movement, 0, len(transfers))
	for _, t := range transfers {
		movements = append(movements, stock.Movement{BatchID: t.BatchID(), Quantity: t.Quantity()})
	}

	return stock.Summarize(stock.SessionTotals(refs, quantities), movements), nil
}

func toReportDTO(summary stock.Summary, start, end time.Time) *ReportDTO {
	sessions := make([]SessionTotalDTO, 0, len(summary.Sessions))
	for _, s := range summary.Sessions {
		sessions = append(sessions, SessionTotalDTO{
			SessionID:    s.SessionID,
			HeldAt:       s.HeldAt,
			Type:         s.Type,
			Facilitator:  s.Facilitator,
			Participants: s.Participants,
			Consumed:     s.Consumed,
		})
	}
	return &ReportDTO{
		StartDate:             biztime.FormatDate(start),
		EndDate:               biztime.FormatDate(end),
		SessionCount:          summary.SessionCount,
		TotalParticipants:     summary.TotalParticipants,
		TotalConsumed:         summary.TotalConsumed,
		AveragePerSession:     summary.AveragePerSession,
		AveragePerParticipant: summary.AveragePerParticipant,
		TotalTransferred:      summary.TotalTransferred,
		Sessions:              sessions,
	}
}
