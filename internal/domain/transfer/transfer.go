package transfer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"preparos/internal/domain/shared"
	"preparos/internal/shared/biztime"
)

// Transfer ("saída") is a quantity of one batch sent outside the group.
type Transfer struct {
	id          uint
	batchID     uint
	date        time.Time
	destination string
	quantity    decimal.Decimal
	notes       string
	createdBy   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// Details holds the user-editable fields of a transfer.
type Details struct {
	BatchID     uint
	Date        time.Time
	Destination string
	Quantity    decimal.Decimal
	Notes       string
}

func NewTransfer(details Details, createdBy *uuid.UUID) (*Transfer, error) {
	t := &Transfer{createdBy: createdBy}
	if err := t.apply(details); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	t.createdAt = now
	t.updatedAt = now
	return t, nil
}

func ReconstructTransfer(id uint, details Details, createdBy *uuid.UUID, createdAt, updatedAt time.Time) (*Transfer, error) {
	if id == 0 {
		return nil, fmt.Errorf("transfer ID cannot be zero")
	}
	return &Transfer{
		id:          id,
		batchID:     details.BatchID,
		date:        details.Date,
		destination: details.Destination,
		quantity:    details.Quantity,
		notes:       details.Notes,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Transfer) Update(details Details) error {
	if err := t.apply(details); err != nil {
		return err
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Transfer) apply(d Details) error {
	if d.BatchID == 0 {
		return fmt.Errorf("batch is required")
	}
	if d.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	destination := strings.TrimSpace(d.Destination)
	if destination == "" {
		return fmt.Errorf("destination is required")
	}
	if err := shared.ValidateTextLength("destination", destination, shared.MaxTextLength); err != nil {
		return err
	}
	if err := shared.ValidateQuantity("quantity", d.Quantity); err != nil {
		return err
	}

	t.batchID = d.BatchID
	t.date = d.Date
	t.destination = destination
	t.quantity = d.Quantity
	t.notes = strings.TrimSpace(d.Notes)
	return nil
}

func (t *Transfer) ID() uint { return t.id }
func (t *Transfer) BatchID() uint { return t.batchID }
func (t *Transfer) Date() time.Time { return t.date }
func (t *Transfer) Destination() string { return t.destination }
func (t *Transfer) Quantity() decimal.Decimal { return t.quantity }
func (t *Transfer) Notes() string { return t.notes }
func (t *Transfer) CreatedBy() *uuid.UUID { return t.createdBy }
func (t *Transfer) CreatedAt() time.Time { return t.createdAt }
func (t *Transfer) UpdatedAt() time.Time { return t.updatedAt }

func (t *Transfer) SetID(id uint) {
	t.id = id
}
