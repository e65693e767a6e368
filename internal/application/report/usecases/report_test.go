package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preparos/internal/domain/session"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/biztime"
	apperrors "preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func reportSession(t *testing.T, id uint, heldAt time.Time, participants int) *session.Session {
	t.Helper()
	s, err := session.ReconstructSession(id, session.Details{
		HeldAt:       heldAt,
		Type:         session.TypeEscala,
		Facilitator:  "João",
		Participants: participants,
	}, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func TestGetReportUseCase(t *testing.T) {
	require.NoError(t, biztime.Init("America/Sao_Paulo"))

	sessionRepo := &mockSessionRepository{
		ListFunc: func(ctx context.Context, filter session.ListFilter) ([]*session.Session, int64, error) {
			// 2024-03-01 00:00 and 2024-04-01 00:00 in São Paulo (UTC-3)
			assert.Equal(t, time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), filter.From)
			assert.Equal(t, time.Date(2024, 4, 1, 3, 0, 0, 0, time.UTC), filter.To)
			assert.Zero(t, filter.PageSize)
			return []*session.Session{
				reportSession(t, 2, time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC), 20),
				reportSession(t, 1, time.Date(2024, 3, 2, 23, 0, 0, 0, time.UTC), 10),
			}, 2, nil
		},
		ListLinesFunc: func(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error) {
			return []*session.ConsumptionLine{
				session.ReconstructConsumptionLine(1, 1, 1, dec("2")),
				session.ReconstructConsumptionLine(2, 1, 2, dec("1")),
				session.ReconstructConsumptionLine(3, 2, 1, dec("4")),
			}, nil
		},
	}
	transferRepo := &mockTransferRepository{
		ListFunc: func(ctx context.Context, filter transfer.ListFilter) ([]*transfer.Transfer, int64, error) {
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), filter.StartDate)
			assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), filter.EndDate)
			tr, err := transfer.ReconstructTransfer(5, transfer.Details{
				BatchID:     1,
				Date:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
				Destination: "Núcleo Sul",
				Quantity:    dec("2.5"),
			}, nil, time.Now(), time.Now())
			require.NoError(t, err)
			return []*transfer.Transfer{tr}, 1, nil
		},
	}
	uc := NewGetReportUseCase(sessionRepo, transferRepo, logger.NewNop())

	report, err := uc.Execute(context.Background(), ReportQuery{StartDate: "2024-03-01", EndDate: "2024-03-31"})
	require.NoError(t, err)

	assert.Equal(t, 2, report.SessionCount)
	assert.Equal(t, 30, report.TotalParticipants)
	assert.True(t, dec("7").Equal(report.TotalConsumed))
	assert.True(t, dec("3.5").Equal(report.AveragePerSession))
	assert.True(t, dec("0.2333").Equal(report.AveragePerParticipant))
	assert.True(t, dec("2.5").Equal(report.TotalTransferred))
	require.Len(t, report.Sessions, 2)
	assert.True(t, dec("4").Equal(report.Sessions[0].Consumed))
}

func TestGetReportUseCaseEmptyRange(t *testing.T) {
	sessionRepo := &mockSessionRepository{
		ListLinesFunc: func(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error) {
			t.Fatal("lines must not be loaded without sessions")
			return nil, nil
		},
	}
	uc := NewGetReportUseCase(sessionRepo, &mockTransferRepository{}, logger.NewNop())

	report, err := uc.Execute(context.Background(), ReportQuery{StartDate: "2023-01-01", EndDate: "2023-01-31"})
	require.NoError(t, err)

	assert.Zero(t, report.SessionCount)
	assert.Zero(t, report.TotalParticipants)
	assert.True(t, report.TotalConsumed.IsZero())
	assert.True(t, report.AveragePerSession.IsZero())
	assert.True(t, report.AveragePerParticipant.IsZero())
	assert.True(t, report.TotalTransferred.IsZero())
	assert.Empty(t, report.Sessions)
}

func TestGetReportUseCaseRange(t *testing.T) {
	today := biztime.Today()

	tests := []struct {
		name      string
		query     ReportQuery
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "defaults to the current year",
			wantStart: biztime.FormatDate(biztime.StartOfYear(today)),
			wantEnd:   biztime.FormatDate(today),
		},
		{
			name:      "single day",
			query:     ReportQuery{StartDate: "2024-03-02", EndDate: "2024-03-02"},
			wantStart: "2024-03-02",
			wantEnd:   "2024-03-02",
		},
		{name: "start after end", query: ReportQuery{StartDate: "2024-03-03", EndDate: "2024-03-02"}, wantErr: true},
		{name: "malformed start", query: ReportQuery{StartDate: "03/02/2024"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGetReportUseCase(&mockSessionRepository{}, &mockTransferRepository{}, logger.NewNop())
			report, err := uc.Execute(context.Background(), tt.query)
			if tt.wantErr {
				assert.True(t, apperrors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, report.StartDate)
			assert.Equal(t, tt.wantEnd, report.EndDate)
		})
	}
}

func TestExportReportUseCase(t *testing.T) {
	exporter := &mockExporter{}
	uc := NewExportReportUseCase(&mockSessionRepository{}, &mockTransferRepository{}, exporter, logger.NewNop())

	result, err := uc.Execute(context.Background(), ReportQuery{StartDate: "2024-01-01", EndDate: "2024-06-30"})
	require.NoError(t, err)

	assert.Equal(t, "relatorio_20240101_20240630.xlsx", result.Filename)
	assert.Equal(t, []byte("xlsx"), result.Content)
	require.NotNil(t, exporter.rendered)
	assert.Zero(t, exporter.rendered.SessionCount)
}
