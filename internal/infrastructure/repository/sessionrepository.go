package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"preparos/internal/domain/session"
	"preparos/internal/infrastructure/persistence/mappers"
	"preparos/internal/infrastructure/persistence/models"
	"preparos/internal/shared/db"
	"preparos/internal/shared/errors"
)

var sessionUpdateColumns = []string{
	"held_at", "type", "facilitator", "speaker", "reader", "participants", "updated_at",
}

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) session.Repository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, s *session.Session) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SessionRepositoryImpl) UpdateDetails(ctx context.Context, s *session.Session) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.SessionModel{}).
		Where("id = ?", model.ID).
		Select(sessionUpdateColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	return nil
}

func (r *SessionRepositoryImpl) GetByID(ctx context.Context, id uint) (*session.Session, error) {
	var model models.SessionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var lines []*models.ConsumptionModel
	if err := tx.Where("session_id = ?", id).Order("id ASC").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to load session lines: %w", err)
	}

	return r.mapper.ToDomain(&model, lines)
}

func (r *SessionRepositoryImpl) List(ctx context.Context, filter session.ListFilter) ([]*session.Session, int64, error) {
	var list []*models.SessionModel
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.SessionModel{})
	if !filter.From.IsZero() {
		query = query.Where("held_at >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		query = query.Where("held_at < ?", filter.To.UTC())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	err := query.Order("held_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*session.Session, 0, len(list))
	for _, model := range list {
		s, err := r.mapper.ToDomain(model, nil)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}
	return sessions, total, nil
}

// Delete removes the session together with its lines.
func (r *SessionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("session_id = ?", id).Delete(&models.ConsumptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session lines: %w", err)
	}

	result := tx.Delete(&models.SessionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("session not found")
	}
	return nil
}

func (r *SessionRepositoryImpl) InsertLines(ctx context.Context, sessionID uint, lines []session.LineInput) error {
	if len(lines) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.LinesToModels(sessionID, lines)).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("session already has a line for this batch")
		}
		return fmt.Errorf("failed to insert session lines: %w", err)
	}
	return nil
}

func (r *SessionRepositoryImpl) UpdateLines(ctx context.Context, updates []session.LineUpdate) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for _, u := range updates {
		err := tx.Model(&models.ConsumptionModel{}).
			Where("id = ?", u.LineID).
			Update("quantity", u.Quantity).Error
		if err != nil {
			return fmt.Errorf("failed to update session line %d: %w", u.LineID, err)
		}
	}
	return nil
}

func (r *SessionRepositoryImpl) DeleteLines(ctx context.Context, lineIDs []uint) error {
	if len(lineIDs) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", lineIDs).Delete(&models.ConsumptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session lines: %w", err)
	}
	return nil
}

func (r *SessionRepositoryImpl) ListLines(ctx context.Context, sessionIDs []uint) ([]*session.ConsumptionLine, error) {
	var list []*models.ConsumptionModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ConsumptionModel{})
	if len(sessionIDs) > 0 {
		query = query.Where("session_id IN ?", sessionIDs)
	}
	if err := query.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list consumption lines: %w", err)
	}

	lines := make([]*session.ConsumptionLine, 0, len(list))
	for _, model := range list {
		lines = append(lines, r.mapper.LineToDomain(model))
	}
	return lines, nil
}

func (r *SessionRepositoryImpl) ListLinesByBatch(ctx context.Context, batchID uint) ([]*session.BatchLine, error) {
	var rows []*models.BatchLineRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Table(models.ConsumptionModel{}.TableName()+" AS c").
		Select("c.id, c.session_id, c.batch_id, c.quantity, " +
			"s.held_at AS session_held_at, s.type AS session_type, " +
			"s.facilitator AS session_facilitator, s.participants AS session_participants").
		Joins("LEFT JOIN " + models.SessionModel{}.TableName() + " AS s ON s.id = c.session_id").
		Where("c.batch_id = ?", batchID).
		Order("c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list batch consumption: %w", err)
	}

	lines := make([]*session.BatchLine, 0, len(rows))
	for _, row := range rows {
		line, err := r.mapper.BatchLineToDomain(row)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
