package usecases

import (
	"strings"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/batch"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/errors"
)

// BatchInput holds the editable fields of a batch as received from clients.
// Dates use the YYYY-MM-DD layout.
type BatchInput struct {
	ProductionDate   string
	ArrivalDate      *string
	OriginGroup      *string
	Preparer         string
	ProducedQuantity decimal.Decimal
	Grade            string
	Status           string
	Type             string
}

func (in BatchInput) toDetails() (batch.Details, error) {
	production, err := biztime.ParseDate(in.ProductionDate)
	if err != nil {
		return batch.Details{}, errors.NewValidationError("invalid production date", err.Error())
	}

	details := batch.Details{
		ProductionDate:   production,
		OriginGroup:      in.OriginGroup,
		Preparer:         in.Preparer,
		ProducedQuantity: in.ProducedQuantity,
		Grade:            in.Grade,
		Status:           in.Status,
		Type:             batch.Type(in.Type),
	}

	if in.ArrivalDate != nil && strings.TrimSpace(*in.ArrivalDate) != "" {
		arrival, err := biztime.ParseDate(strings.TrimSpace(*in.ArrivalDate))
		if err != nil {
			return batch.Details{}, errors.NewValidationError("invalid arrival date", err.Error())
		}
		details.ArrivalDate = &arrival
	}
	return details, nil
}
