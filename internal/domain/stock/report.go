package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// averageScale is the number of decimal places kept in report averages.
const averageScale = 4

// SessionTotal is one session of a report period with its consumption.
type SessionTotal struct {
	SessionID    uint
	HeldAt       time.Time
	Type         string
	Facilitator  string
	Participants int
	Consumed     decimal.Decimal
}

// Summary aggregates a report period. Consumption counts session lines
// only; transfers are reported separately.
type Summary struct {
	SessionCount          int
	TotalParticipants     int
	TotalConsumed         decimal.Decimal
	AveragePerSession     decimal.Decimal
	AveragePerParticipant decimal.Decimal
	TotalTransferred      decimal.Decimal
	Sessions              []SessionTotal
}

// Summarize builds the report aggregates. Averages are zero when there is
// nothing to divide by, so an empty period yields an all-zero summary.
func Summarize(sessions []SessionTotal, transfers []Movement) Summary {
	summary := Summary{
		SessionCount:          len(sessions),
		TotalConsumed:         decimal.Zero,
		AveragePerSession:     decimal.Zero,
		AveragePerParticipant: decimal.Zero,
		TotalTransferred:      decimal.Zero,
		Sessions:              sessions,
	}
	if summary.Sessions == nil {
		summary.Sessions = []SessionTotal{}
	}

	for _, s := range sessions {
		summary.TotalParticipants += s.Participants
		summary.TotalConsumed = summary.TotalConsumed.Add(s.Consumed)
	}
	for _, t := range transfers {
		summary.TotalTransferred = summary.TotalTransferred.Add(t.Quantity)
	}

	if summary.SessionCount > 0 {
		summary.AveragePerSession = summary.TotalConsumed.DivRound(decimal.NewFromInt(int64(summary.SessionCount)), averageScale)
	}
	if summary.TotalParticipants > 0 {
		summary.AveragePerParticipant = summary.TotalConsumed.DivRound(decimal.NewFromInt(int64(summary.TotalParticipants)), averageScale)
	}

	return summary
}

// SessionTotals attaches the summed consumption of each session.
func SessionTotals(sessions []SessionRef, lines map[uint][]decimal.Decimal) []SessionTotal {
	totals := make([]SessionTotal, 0, len(sessions))
	for _, s := range sessions {
		consumed := decimal.Zero
		for _, q := range lines[s.ID] {
			consumed = consumed.Add(q)
		}
		totals = append(totals, SessionTotal{
			SessionID:    s.ID,
			HeldAt:       s.HeldAt,
			Type:         s.Type,
			Facilitator:  s.Facilitator,
			Participants: s.Participants,
			Consumed:     consumed,
		})
	}
	return totals
}
