package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"preparos/internal/domain/batch"
	"preparos/internal/infrastructure/persistence/mappers"
	"preparos/internal/infrastructure/persistence/models"
	"preparos/internal/shared/db"
	"preparos/internal/shared/errors"
)

var batchUpdateColumns = []string{
	"production_date", "arrival_date", "origin_group", "preparer",
	"produced_quantity", "grade", "status", "type", "updated_at",
}

type BatchRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BatchMapper
}

func NewBatchRepository(db *gorm.DB) batch.Repository {
	return &BatchRepositoryImpl{
		db:     db,
		mapper: mappers.NewBatchMapper(),
	}
}

func (r *BatchRepositoryImpl) Create(ctx context.Context, b *batch.Batch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create batch: %w", err)
	}

	b.SetID(model.ID)
	return nil
}

// Update writes every editable column so that cleared donation fields
// become NULL.
func (r *BatchRepositoryImpl) Update(ctx context.Context, b *batch.Batch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.BatchModel{}).
		Where("id = ?", model.ID).
		Select(batchUpdateColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update batch: %w", result.Error)
	}

	// RowsAffected may be 0 when updated values are identical to existing values.
	return nil
}

func (r *BatchRepositoryImpl) GetByID(ctx context.Context, id uint) (*batch.Batch, error) {
	var model models.BatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("batch not found")
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BatchRepositoryImpl) List(ctx context.Context, filter batch.ListFilter) ([]*batch.Batch, error) {
	var list []*models.BatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.BatchModel{}).
		Scopes(db.ContainsFold(filter.Query, "preparer", "origin_group", "grade"))
	if filter.AvailableOnly {
		query = query.Where("status = ?", batch.StatusAvailable)
	}

	if err := query.Order("production_date DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *BatchRepositoryImpl) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return []uint{}, nil
	}
	var found []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.BatchModel{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to check batch ids: %w", err)
	}
	return found, nil
}

func (r *BatchRepositoryImpl) CountDependents(ctx context.Context, id uint) (int64, int64, error) {
	var lines, transfers int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ConsumptionModel{}).Where("batch_id = ?", id).Count(&lines).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count consumption lines: %w", err)
	}
	if err := tx.Model(&models.TransferModel{}).Where("batch_id = ?", id).Count(&transfers).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count transfers: %w", err)
	}
	return lines, transfers, nil
}

func (r *BatchRepositoryImpl) Delete(ctx context.Context, id uint, cascade bool) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if cascade {
		if err := tx.Where("batch_id = ?", id).Delete(&models.ConsumptionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete consumption lines of batch: %w", err)
		}
		if err := tx.Where("batch_id = ?", id).Delete(&models.TransferModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete transfers of batch: %w", err)
		}
	}

	result := tx.Delete(&models.BatchModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete batch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("batch not found")
	}
	return nil
}
