package mappers

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func dateToModel(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// dateFromModel reads the calendar day back as midnight UTC regardless of
// the location the driver attached.
func dateFromModel(d datatypes.Date) time.Time {
	t := time.Time(d)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func datePtrToModel(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := dateToModel(*t)
	return &d
}

func datePtrFromModel(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := dateFromModel(*d)
	return &t
}

func uuidPtrToModel(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// uuidPtrFromModel ignores malformed ids rather than failing the whole row.
func uuidPtrFromModel(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
