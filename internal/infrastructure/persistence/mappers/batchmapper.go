package mappers

import (
	"fmt"

	"preparos/internal/domain/batch"
	"preparos/internal/infrastructure/persistence/models"
	"preparos/internal/shared/mapper"
)

// BatchMapper handles the conversion between Batch domain entities and persistence models.
type BatchMapper interface {
	ToModel(b *batch.Batch) *models.BatchModel
	ToDomain(model *models.BatchModel) (*batch.Batch, error)
	ToDomainList(list []*models.BatchModel) ([]*batch.Batch, error)
}

type BatchMapperImpl struct{}

func NewBatchMapper() BatchMapper {
	return &BatchMapperImpl{}
}

func (m *BatchMapperImpl) ToModel(b *batch.Batch) *models.BatchModel {
	return &models.BatchModel{
		ID:               b.ID(),
		ProductionDate:   dateToModel(b.ProductionDate()),
		ArrivalDate:      datePtrToModel(b.ArrivalDate()),
		OriginGroup:      b.OriginGroup(),
		Preparer:         b.Preparer(),
		ProducedQuantity: b.ProducedQuantity(),
		Grade:            b.Grade(),
		Status:           b.Status(),
		Type:             string(b.Type()),
		CreatedBy:        uuidPtrToModel(b.CreatedBy()),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func (m *BatchMapperImpl) ToDomain(model *models.BatchModel) (*batch.Batch, error) {
	if model == nil {
		return nil, nil
	}
	b, err := batch.ReconstructBatch(
		model.ID,
		batch.Details{
			ProductionDate:   dateFromModel(model.ProductionDate),
			ArrivalDate:      datePtrFromModel(model.ArrivalDate),
			OriginGroup:      model.OriginGroup,
			Preparer:         model.Preparer,
			ProducedQuantity: model.ProducedQuantity,
			Grade:            model.Grade,
			Status:           model.Status,
			Type:             batch.Type(model.Type),
		},
		uuidPtrFromModel(model.CreatedBy),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct batch: %w", err)
	}
	return b, nil
}

func (m *BatchMapperImpl) ToDomainList(list []*models.BatchModel) ([]*batch.Batch, error) {
	return mapper.MapSliceWithID(list, m.ToDomain, func(model *models.BatchModel) uint { return model.ID })
}
