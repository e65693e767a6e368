package session

import (
	"context"
	"time"
)

// Names of the write steps of a session save, reported when one fails.
const (
	StepCreateSession = "create_session"
	StepUpdateSession = "update_session"
	StepDeleteLines   = "delete_lines"
	StepInsertLines   = "insert_lines"
	StepUpdateLines   = "update_lines"
)

type Repository interface {
	// Create inserts the session row. Lines are added with InsertLines.
	Create(ctx context.Context, s *Session) error
	// UpdateDetails writes the scalar fields only.
	UpdateDetails(ctx context.Context, s *Session) error
	// GetByID loads the session with its lines.
	GetByID(ctx context.Context, id uint) (*Session, error)
	// List returns sessions newest first, without lines.
	List(ctx context.Context, filter ListFilter) ([]*Session, int64, error)
	Delete(ctx context.Context, id uint) error

	InsertLines(ctx context.Context, sessionID uint, lines []LineInput) error
	UpdateLines(ctx context.Context, updates []LineUpdate) error
	DeleteLines(ctx context.Context, lineIDs []uint) error
	// ListLines returns lines for the given sessions, or every line when
	// sessionIDs is empty.
	ListLines(ctx context.Context, sessionIDs []uint) ([]*ConsumptionLine, error)
	// ListLinesByBatch returns the lines of one batch joined with their
	// session. Lines whose session no longer exists have a nil Session.
	ListLinesByBatch(ctx context.Context, batchID uint) ([]*BatchLine, error)
}

// ListFilter selects sessions by held_at in [From, To). Zero bounds are open.
type ListFilter struct {
	From     time.Time
	To       time.Time
	Page     int
	PageSize int
}

// BatchLine is a consumption line seen from its batch.
type BatchLine struct {
	Line    *ConsumptionLine
	Session *Session
}
