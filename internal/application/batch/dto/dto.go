package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/stock"
	"preparos/internal/shared/biztime"
)

type BatchDTO struct {
	ID               uint            `json:"id"`
	ProductionDate   string          `json:"production_date"`
	ArrivalDate      *string         `json:"arrival_date"`
	OriginGroup      *string         `json:"origin_group"`
	Preparer         string          `json:"preparer"`
	ProducedQuantity decimal.Decimal `json:"produced_quantity"`
	Grade            string          `json:"grade"`
	Status           string          `json:"status"`
	Type             string          `json:"type"`
	CreatedBy        *string         `json:"created_by,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// BalanceDTO carries the computed figures of a batch. LowStock and
// Depleted are derived and never change the batch status.
type BalanceDTO struct {
	Consumed    decimal.Decimal `json:"consumed"`
	Transferred decimal.Decimal `json:"transferred"`
	Remaining   decimal.Decimal `json:"remaining"`
	Level       string          `json:"level"`
	LowStock    bool            `json:"low_stock"`
	Depleted    bool            `json:"depleted"`
}

type StockItemDTO struct {
	BatchDTO
	Balance BalanceDTO `json:"balance"`
}

type HistoryEntryDTO struct {
	Kind         string          `json:"kind"`
	RecordID     uint            `json:"record_id"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Quantity     decimal.Decimal `json:"quantity"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Participants *int            `json:"participants,omitempty"`
	Destination  string          `json:"destination,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

type BatchDetailDTO struct {
	Batch   BatchDTO          `json:"batch"`
	Balance BalanceDTO        `json:"balance"`
	History []HistoryEntryDTO `json:"history"`
}

func ToBatchDTO(b *batch.Batch) *BatchDTO {
	if b == nil {
		return nil
	}

	d := &BatchDTO{
		ID:               b.ID(),
		ProductionDate:   biztime.FormatDate(b.ProductionDate()),
		OriginGroup:      b.OriginGroup(),
		Preparer:         b.Preparer(),
		ProducedQuantity: b.ProducedQuantity(),
		Grade:            b.Grade(),
		Status:           b.Status(),
		Type:             string(b.Type()),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
	if b.ArrivalDate() != nil {
		arrival := biztime.FormatDate(*b.ArrivalDate())
		d.ArrivalDate = &arrival
	}
	if b.CreatedBy() != nil {
		createdBy := b.CreatedBy().String()
		d.CreatedBy = &createdBy
	}
	return d
}

func ToBalanceDTO(b stock.BatchBalance, threshold decimal.Decimal) BalanceDTO {
	level := stock.Classify(b.Remaining, threshold)
	return BalanceDTO{
		Consumed:    b.Consumed,
		Transferred: b.Transferred,
		Remaining:   b.Remaining,
		Level:       string(level),
		LowStock:    level == stock.LevelLow,
		Depleted:    level == stock.LevelDepleted,
	}
}

func ToHistoryDTOs(entries []stock.HistoryEntry) []HistoryEntryDTO {
	result := make([]HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, HistoryEntryDTO{
			Kind:         string(e.Kind),
			RecordID:     e.RecordID,
			OccurredAt:   e.OccurredAt,
			Quantity:     e.Quantity,
			Title:        e.Title,
			Subtitle:     e.Subtitle,
			Participants: e.Participants,
			Destination:  e.Destination,
			Notes:        e.Notes,
		})
	}
	return result
}
