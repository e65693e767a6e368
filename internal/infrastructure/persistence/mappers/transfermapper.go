package mappers

import (
	"fmt"

	"preparos/internal/domain/transfer"
	"preparos/internal/infrastructure/persistence/models"
	"preparos/internal/shared/mapper"
)

// TransferMapper handles the conversion between Transfer domain entities and persistence models.
type TransferMapper interface {
	ToModel(t *transfer.Transfer) *models.TransferModel
	ToDomain(model *models.TransferModel) (*transfer.Transfer, error)
	ToDomainList(list []*models.TransferModel) ([]*transfer.Transfer, error)
}

type TransferMapperImpl struct{}

func NewTransferMapper() TransferMapper {
	return &TransferMapperImpl{}
}

func (m *TransferMapperImpl) ToModel(t *transfer.Transfer) *models.TransferModel {
	return &models.TransferModel{
		ID:          t.ID(),
		BatchID:     t.BatchID(),
		Date:        dateToModel(t.Date()),
		Destination: t.Destination(),
		Quantity:    t.Quantity(),
		Notes:       t.Notes(),
		CreatedBy:   uuidPtrToModel(t.CreatedBy()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func (m *TransferMapperImpl) ToDomain(model *models.TransferModel) (*transfer.Transfer, error) {
	if model == nil {
		return nil, nil
	}
	t, err := transfer.ReconstructTransfer(
		model.ID,
		transfer.Details{
			BatchID:     model.BatchID,
			Date:        dateFromModel(model.Date),
			Destination: model.Destination,
			Quantity:    model.Quantity,
			Notes:       model.Notes,
		},
		uuidPtrFromModel(model.CreatedBy),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct transfer: %w", err)
	}
	return t, nil
}

func (m *TransferMapperImpl) ToDomainList(list []*models.TransferModel) ([]*transfer.Transfer, error) {
	return mapper.MapSliceWithID(list, m.ToDomain, func(model *models.TransferModel) uint { return model.ID })
}
