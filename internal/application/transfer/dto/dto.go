package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/transfer"
	"preparos/internal/shared/biztime"
)

type TransferDTO struct {
	ID          uint            `json:"id"`
	BatchID     uint            `json:"batch_id"`
	Date        string          `json:"date"`
	Destination string          `json:"destination"`
	Quantity    decimal.Decimal `json:"quantity"`
	Notes       string          `json:"notes"`
	CreatedBy   *string         `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ListTransfersResponse struct {
	Transfers []*TransferDTO `json:"transfers"`
	Total     int64          `json:"total"`
	Page      int            `json:"page"`
	PageSize  int            `json:"page_size"`
}

func ToTransferDTO(t *transfer.Transfer) *TransferDTO {
	if t == nil {
		return nil
	}
	d := &TransferDTO{
		ID:          t.ID(),
		BatchID:     t.BatchID(),
		Date:        biztime.FormatDate(t.Date()),
		Destination: t.Destination(),
		Quantity:    t.Quantity(),
		Notes:       t.Notes(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if t.CreatedBy() != nil {
		createdBy := t.CreatedBy().String()
		d.CreatedBy = &createdBy
	}
	return d
}
