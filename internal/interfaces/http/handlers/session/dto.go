package session

import (
	"github.com/shopspring/decimal"

	"preparos/internal/application/session/usecases"
	"preparos/internal/domain/session"
	"preparos/internal/shared/utils"
)

func init() {
	utils.RegisterValidation("session_type", func(value string) bool {
		return session.Type(value).IsValid()
	})
}

// LineRequest is one consumption row of the session form. Rows without a
// batch or a quantity are dropped before saving.
type LineRequest struct {
	BatchID  uint             `json:"batch_id"`
	Quantity *decimal.Decimal `json:"quantity" swaggertype:"string" example:"0.75"`
}

// SessionRequest is the body of POST and PUT /sessions. Date is YYYY-MM-DD
// and Time is HH:MM, both in the business timezone.
type SessionRequest struct {
	Date         string        `json:"date" binding:"required"`
	Time         string        `json:"time" binding:"required"`
	Type         string        `json:"type" binding:"required" validate:"session_type"`
	Facilitator  string        `json:"facilitator" binding:"required,max=255"`
	Speaker      string        `json:"speaker" binding:"max=255"`
	Reader       string        `json:"reader" binding:"max=255"`
	Participants int           `json:"participants" binding:"gte=0"`
	Lines        []LineRequest `json:"lines"`
}

func (r *SessionRequest) toInput() usecases.SessionInput {
	lines := make([]session.LineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		in := session.LineInput{BatchID: l.BatchID}
		if l.Quantity != nil {
			in.Quantity = *l.Quantity
		}
		lines = append(lines, in)
	}

	return usecases.SessionInput{
		Date:         r.Date,
		Time:         r.Time,
		Type:         r.Type,
		Facilitator:  r.Facilitator,
		Speaker:      r.Speaker,
		Reader:       r.Reader,
		Participants: r.Participants,
		Lines:        lines,
	}
}
