package batch

import (
	"github.com/shopspring/decimal"

	"preparos/internal/application/batch/usecases"
)

// BatchRequest is the body of POST and PUT /batches. Dates use YYYY-MM-DD.
type BatchRequest struct {
	ProductionDate   string          `json:"production_date" binding:"required"`
	ArrivalDate      *string         `json:"arrival_date,omitempty"`
	OriginGroup      *string         `json:"origin_group,omitempty" binding:"omitempty,max=255"`
	Preparer         string          `json:"preparer" binding:"required,max=255"`
	ProducedQuantity decimal.Decimal `json:"produced_quantity" swaggertype:"string" example:"12.5"`
	Grade            string          `json:"grade" binding:"max=100"`
	Status           string          `json:"status" binding:"max=50"`
	Type             string          `json:"type" binding:"required"`
}

func (r *BatchRequest) toInput() usecases.BatchInput {
	return usecases.BatchInput{
		ProductionDate:   r.ProductionDate,
		ArrivalDate:      r.ArrivalDate,
		OriginGroup:      r.OriginGroup,
		Preparer:         r.Preparer,
		ProducedQuantity: r.ProducedQuantity,
		Grade:            r.Grade,
		Status:           r.Status,
		Type:             r.Type,
	}
}
