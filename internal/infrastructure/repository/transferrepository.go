package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"preparos/internal/domain/transfer"
	"preparos/internal/infrastructure/persistence/mappers"
	"preparos/internal/infrastructure/persistence/models"
	"preparos/internal/shared/db"
	"preparos/internal/shared/errors"
)

var transferUpdateColumns = []string{
	"batch_id", "date", "destination", "quantity", "notes", "updated_at",
}

type TransferRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TransferMapper
}

func NewTransferRepository(db *gorm.DB) transfer.Repository {
	return &TransferRepositoryImpl{
		db:     db,
		mapper: mappers.NewTransferMapper(),
	}
}

func (r *TransferRepositoryImpl) Create(ctx context.Context, t *transfer.Transfer) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *TransferRepositoryImpl) Update(ctx context.Context, t *transfer.Transfer) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TransferModel{}).
		Where("id = ?", model.ID).
		Select(transferUpdateColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update transfer: %w", result.Error)
	}
	return nil
}

func (r *TransferRepositoryImpl) GetByID(ctx context.Context, id uint) (*transfer.Transfer, error) {
	var model models.TransferModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("transfer not found")
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TransferRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TransferModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("transfer not found")
	}
	return nil
}

func (r *TransferRepositoryImpl) List(ctx context.Context, filter transfer.ListFilter) ([]*transfer.Transfer, int64, error) {
	var list []*models.TransferModel
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TransferModel{})
	if filter.BatchID != nil {
		query = query.Where("batch_id = ?", *filter.BatchID)
	}
	if !filter.StartDate.IsZero() {
		query = query.Where("date >= ?", utcDate(filter.StartDate))
	}
	if !filter.EndDate.IsZero() {
		query = query.Where("date <= ?", utcDate(filter.EndDate))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	err := query.Order("date DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}

	transfers, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return transfers, total, nil
}

func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
