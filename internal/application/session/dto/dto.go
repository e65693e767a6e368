package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/session"
	"preparos/internal/shared/biztime"
)

type LineDTO struct {
	ID       uint            `json:"id"`
	BatchID  uint            `json:"batch_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// SessionDTO is a session with its consumption lines. Date and Time are
// the business-timezone parts of HeldAt, as the session form edits them.
type SessionDTO struct {
	ID           uint            `json:"id"`
	HeldAt       time.Time       `json:"held_at"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Type         string          `json:"type"`
	Facilitator  string          `json:"facilitator"`
	Speaker      string          `json:"speaker"`
	Reader       string          `json:"reader"`
	Participants int             `json:"participants"`
	Total        decimal.Decimal `json:"total"`
	Lines        []LineDTO       `json:"lines"`
	CreatedBy    *string         `json:"created_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SessionSummaryDTO is a row of the session history.
type SessionSummaryDTO struct {
	ID           uint            `json:"id"`
	HeldAt       time.Time       `json:"held_at"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Type         string          `json:"type"`
	Facilitator  string          `json:"facilitator"`
	Participants int             `json:"participants"`
	Total        decimal.Decimal `json:"total"`
}

type ListSessionsResponse struct {
	Sessions []*SessionSummaryDTO `json:"sessions"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

func ToSessionDTO(s *session.Session) *SessionDTO {
	if s == nil {
		return nil
	}

	date, clock := biztime.SplitDateTime(s.HeldAt())
	d := &SessionDTO{
		ID:           s.ID(),
		HeldAt:       s.HeldAt(),
		Date:         date,
		Time:         clock,
		Type:         string(s.Type()),
		Facilitator:  s.Facilitator(),
		Speaker:      s.Speaker(),
		Reader:       s.Reader(),
		Participants: s.Participants(),
		Total:        decimal.Zero,
		Lines:        make([]LineDTO, 0, len(s.Lines())),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
	for _, l := range s.Lines() {
		d.Lines = append(d.Lines, LineDTO{ID: l.ID(), BatchID: l.BatchID(), Quantity: l.Quantity()})
		d.Total = d.Total.Add(l.Quantity())
	}
	if s.CreatedBy() != nil {
		createdBy := s.CreatedBy().String()
		d.CreatedBy = &createdBy
	}
	return d
}

func ToSessionSummaryDTO(s *session.Session, total decimal.Decimal) *SessionSummaryDTO {
	date, clock := biztime.SplitDateTime(s.HeldAt())
	return &SessionSummaryDTO{
		ID:           s.ID(),
		HeldAt:       s.HeldAt(),
		Date:         date,
		Time:         clock,
		Type:         string(s.Type()),
		Facilitator:  s.Facilitator(),
		Participants: s.Participants(),
		Total:        total,
	}
}
