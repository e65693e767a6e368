package transfer

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"preparos/internal/application/transfer/usecases"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/utils"
)

// TransferRequest is the body of POST and PUT /transfers.
type TransferRequest struct {
	BatchID     uint            `json:"batch_id" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Destination string          `json:"destination" binding:"required,max=255"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string" example:"2"`
	Notes       string          `json:"notes" binding:"max=2000"`
}

func (r *TransferRequest) toInput() usecases.TransferInput {
	return usecases.TransferInput{
		BatchID:     r.BatchID,
		Date:        r.Date,
		Destination: r.Destination,
		Quantity:    r.Quantity,
		Notes:       r.Notes,
	}
}

func parseListTransfersQuery(c *gin.Context) (usecases.ListTransfersQuery, error) {
	p := utils.ParsePagination(c)
	query := usecases.ListTransfersQuery{
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
		Page:      p.Page,
		PageSize:  p.PageSize,
	}

	if raw := c.Query("batch_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return query, errors.NewValidationError("invalid batch_id")
		}
		batchID := uint(id)
		query.BatchID = &batchID
	}

	return query, nil
}
