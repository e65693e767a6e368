package usecases

import (
	"preparos/internal/domain/session"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/errors"
)

// SessionInput is a session form submission. Date is YYYY-MM-DD and Time
// is HH:MM, both in the business timezone.
type SessionInput struct {
	Date         string
	Time         string
	Type         string
	Facilitator  string
	Speaker      string
	Reader       string
	Participants int
	Lines        []session.LineInput
}

func (in SessionInput) toDetails() (session.Details, error) {
	heldAt, err := biztime.CombineDateTime(in.Date, in.Time)
	if err != nil {
		return session.Details{}, errors.NewValidationError("invalid session date or time", err.Error())
	}
	return session.Details{
		HeldAt:       heldAt,
		Type:         session.Type(in.Type),
		Facilitator:  in.Facilitator,
		Speaker:      in.Speaker,
		Reader:       in.Reader,
		Participants: in.Participants,
	}, nil
}
