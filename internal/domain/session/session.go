package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"preparos/internal/domain/shared"
	"preparos/internal/shared/biztime"
)

// Type is the closed set of session kinds.
type Type string

const (
	TypeEscala            Type = "Escala"
	TypeEscalaAnual       Type = "Escala Anual"
	TypeCasal             Type = "Casal"
	TypeExtra             Type = "Extra"
	TypeInstrutiva        Type = "Instrutiva"
	TypeDaDirecao         Type = "Da Direção"
	TypeQuadroDeMestres   Type = "Quadro de Mestres"
	TypeAdventicio        Type = "Adventício"
	TypePreparo           Type = "Preparo"
	TypeCaraterInstrutivo Type = "Caráter Instrutivo"
)

// Types lists every session type in display order.
var Types = []Type{
	TypeEscala,
	TypeEscalaAnual,
	TypeCasal,
	TypeExtra,
	TypeInstrutiva,
	TypeDaDirecao,
	TypeQuadroDeMestres,
	TypeAdventicio,
	TypePreparo,
	TypeCaraterInstrutivo,
}

func (t Type) IsValid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Session is one gathering at which the beverage was served.
type Session struct {
	id           uint
	heldAt       time.Time
	sessionType  Type
	facilitator  string
	speaker      string
	reader       string
	participants int
	createdBy    *uuid.UUID
	lines        []*ConsumptionLine
	createdAt    time.Time
	updatedAt    time.Time
}

// Details holds the scalar fields of a session.
type Details struct {
	HeldAt       time.Time
	Type         Type
	Facilitator  string
	Speaker      string
	Reader       string
	Participants int
}

func NewSession(details Details, createdBy *uuid.UUID) (*Session, error) {
	s := &Session{createdBy: createdBy, lines: []*ConsumptionLine{}}
	if err := s.apply(details); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	s.createdAt = now
	s.updatedAt = now
	return s, nil
}

func ReconstructSession(
	id uint,
	details Details,
	createdBy *uuid.UUID,
	lines []*ConsumptionLine,
	createdAt, updatedAt time.Time,
) (*Session, error) {
	if id == 0 {
		return nil, fmt.Errorf("session ID cannot be zero")
	}
	if lines == nil {
		lines = []*ConsumptionLine{}
	}
	return &Session{
		id:           id,
		heldAt:       details.HeldAt,
		sessionType:  details.Type,
		facilitator:  details.Facilitator,
		speaker:      details.Speaker,
		reader:       details.Reader,
		participants: details.Participants,
		createdBy:    createdBy,
		lines:        lines,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// Update replaces the scalar fields. Lines are replaced separately through
// ReplaceLines.
func (s *Session) Update(details Details) error {
	if err := s.apply(details); err != nil {
		return err
	}
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Session) apply(d Details) error {
	if d.HeldAt.IsZero() {
		return fmt.Errorf("session date and time are required")
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("invalid session type %q", d.Type)
	}
	facilitator := strings.TrimSpace(d.Facilitator)
	if facilitator == "" {
		return fmt.Errorf("facilitator is required")
	}
	speaker := strings.TrimSpace(d.Speaker)
	reader := strings.TrimSpace(d.Reader)
	for _, f := range []struct{ name, value string }{
		{"facilitator", facilitator},
		{"speaker", speaker},
		{"reader", reader},
	} {
		if err := shared.ValidateTextLength(f.name, f.value, shared.MaxTextLength); err != nil {
			return err
		}
	}
	if d.Participants < 0 {
		return fmt.Errorf("participants cannot be negative")
	}

	s.heldAt = d.HeldAt.UTC()
	s.sessionType = d.Type
	s.facilitator = facilitator
	s.speaker = speaker
	s.reader = reader
	s.participants = d.Participants
	return nil
}

// ReplaceLines sets the in-memory lines from a normalized input list.
func (s *Session) ReplaceLines(inputs []LineInput) {
	lines := make([]*ConsumptionLine, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, &ConsumptionLine{
			sessionID: s.id,
			batchID:   in.BatchID,
			quantity:  in.Quantity,
		})
	}
	s.lines = lines
}

func (s *Session) ID() uint { return s.id }
func (s *Session) HeldAt() time.Time { return s.heldAt }
func (s *Session) Type() Type { return s.sessionType }
func (s *Session) Facilitator() string { return s.facilitator }
func (s *Session) Speaker() string { return s.speaker }
func (s *Session) Reader() string { return s.reader }
func (s *Session) Participants() int { return s.participants }
func (s *Session) CreatedBy() *uuid.UUID { return s.createdBy }
func (s *Session) Lines() []*ConsumptionLine { return s.lines }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// SetID is called by the repository after insert and propagates to lines.
func (s *Session) SetID(id uint) {
	s.id = id
	for _, l := range s.lines {
		l.sessionID = id
	}
}
