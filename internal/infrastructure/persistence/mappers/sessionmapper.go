package mappers

import (
	"fmt"

	"preparos/internal/domain/session"
	"preparos/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	ToModel(s *session.Session) *models.SessionModel
	ToDomain(model *models.SessionModel, lines []*models.ConsumptionModel) (*session.Session, error)
	LinesToModels(sessionID uint, lines []session.LineInput) []*models.ConsumptionModel
	LineToDomain(model *models.ConsumptionModel) *session.ConsumptionLine
	BatchLineToDomain(row *models.BatchLineRow) (*session.BatchLine, error)
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(s *session.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:           s.ID(),
		HeldAt:       s.HeldAt().UTC(),
		Type:         string(s.Type()),
		Facilitator:  s.Facilitator(),
		Speaker:      s.Speaker(),
		Reader:       s.Reader(),
		Participants: s.Participants(),
		CreatedBy:    uuidPtrToModel(s.CreatedBy()),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel, lines []*models.ConsumptionModel) (*session.Session, error) {
	if model == nil {
		return nil, nil
	}
	domainLines := make([]*session.ConsumptionLine, 0, len(lines))
	for _, l := range lines {
		domainLines = append(domainLines, m.LineToDomain(l))
	}

	s, err := session.ReconstructSession(
		model.ID,
		session.Details{
			HeldAt:       model.HeldAt.UTC(),
			Type:         session.Type(model.Type),
			Facilitator:  model.Facilitator,
			Speaker:      model.Speaker,
			Reader:       model.Reader,
			Participants: model.Participants,
		},
		uuidPtrFromModel(model.CreatedBy),
		domainLines,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct session: %w", err)
	}
	return s, nil
}

func (m *SessionMapperImpl) LinesToModels(sessionID uint, lines []session.LineInput) []*models.ConsumptionModel {
	result := make([]*models.ConsumptionModel, 0, len(lines))
	for _, l := range lines {
		result = append(result, &models.ConsumptionModel{
			SessionID: sessionID,
			BatchID:   l.BatchID,
			Quantity:  l.Quantity,
		})
	}
	return result
}

func (m *SessionMapperImpl) LineToDomain(model *models.ConsumptionModel) *session.ConsumptionLine {
	return session.ReconstructConsumptionLine(model.ID, model.SessionID, model.BatchID, model.Quantity)
}

// BatchLineToDomain leaves Session nil when the joined session is missing.
func (m *SessionMapperImpl) BatchLineToDomain(row *models.BatchLineRow) (*session.BatchLine, error) {
	line := m.LineToDomain(&row.ConsumptionModel)
	if row.SessionHeldAt == nil {
		return &session.BatchLine{Line: line}, nil
	}

	details := session.Details{HeldAt: row.SessionHeldAt.UTC()}
	if row.SessionType != nil {
		details.Type = session.Type(*row.SessionType)
	}
	if row.SessionFacilitator != nil {
		details.Facilitator = *row.SessionFacilitator
	}
	if row.SessionParticipants != nil {
		details.Participants = *row.SessionParticipants
	}

	s, err := session.ReconstructSession(row.SessionID, details, nil, nil, details.HeldAt, details.HeldAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct session of line %d: %w", row.ID, err)
	}
	return &session.BatchLine{Line: line, Session: s}, nil
}
