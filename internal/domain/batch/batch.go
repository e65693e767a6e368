package batch

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"preparos/internal/domain/shared"
	"preparos/internal/shared/biztime"
)

// Type tells locally produced batches from donated ones.
type Type string

const (
	TypeLocal    Type = "Local"
	TypeDonation Type = "Doação"
)

func (t Type) IsValid() bool {
	return t == TypeLocal || t == TypeDonation
}

func (t Type) IsDonation() bool {
	return t == TypeDonation
}

// Status is a label managed by hand. Computed stock flags never change it.
const (
	StatusAvailable = "Disponível"
	StatusDepleted  = "Esgotado"
)

// Column limits for grade and status; other text columns use
// shared.MaxTextLength.
const (
	maxGradeLength  = 100
	maxStatusLength = 50
)

// Batch is one production ("preparo") of the beverage, either made locally
// or received as a donation.
type Batch struct {
	id               uint
	productionDate   time.Time
	arrivalDate      *time.Time
	originGroup      *string
	preparer         string
	producedQuantity decimal.Decimal
	grade            string
	status           string
	batchType        Type
	createdBy        *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

// Details holds the user-editable fields of a batch.
type Details struct {
	ProductionDate   time.Time
	ArrivalDate      *time.Time
	OriginGroup      *string
	Preparer         string
	ProducedQuantity decimal.Decimal
	Grade            string
	Status           string
	Type             Type
}

func NewBatch(details Details, createdBy *uuid.UUID) (*Batch, error) {
	b := &Batch{createdBy: createdBy}
	if err := b.apply(details); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	b.createdAt = now
	b.updatedAt = now
	return b, nil
}

func ReconstructBatch(
	id uint,
	details Details,
	createdBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Batch, error) {
	if id == 0 {
		return nil, fmt.Errorf("batch ID cannot be zero")
	}
	if !details.Type.IsValid() {
		return nil, fmt.Errorf("invalid batch type %q", details.Type)
	}
	return &Batch{
		id:               id,
		productionDate:   details.ProductionDate,
		arrivalDate:      details.ArrivalDate,
		originGroup:      details.OriginGroup,
		preparer:         details.Preparer,
		producedQuantity: details.ProducedQuantity,
		grade:            details.Grade,
		status:           details.Status,
		batchType:        details.Type,
		createdBy:        createdBy,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

// Update replaces every editable field, including the type. Reclassifying
// a donation as local clears the donation-only fields.
func (b *Batch) Update(details Details) error {
	if err := b.apply(details); err != nil {
		return err
	}
	b.updatedAt = biztime.NowUTC()
	return nil
}

func (b *Batch) apply(d Details) error {
	preparer := strings.TrimSpace(d.Preparer)
	if preparer == "" {
		return fmt.Errorf("preparer is required")
	}
	if err := shared.ValidateTextLength("preparer", preparer, shared.MaxTextLength); err != nil {
		return err
	}
	if d.ProductionDate.IsZero() {
		return fmt.Errorf("production date is required")
	}
	if err := shared.ValidateQuantity("produced quantity", d.ProducedQuantity); err != nil {
		return err
	}
	grade := strings.TrimSpace(d.Grade)
	if err := shared.ValidateTextLength("grade", grade, maxGradeLength); err != nil {
		return err
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("type must be %q or %q", TypeLocal, TypeDonation)
	}

	status := strings.TrimSpace(d.Status)
	if status == "" {
		status = StatusAvailable
	}
	if err := shared.ValidateTextLength("status", status, maxStatusLength); err != nil {
		return err
	}
	var originGroup *string
	if d.Type.IsDonation() {
		originGroup = trimmedOrNil(d.OriginGroup)
	}
	if originGroup != nil {
		if err := shared.ValidateTextLength("origin group", *originGroup, shared.MaxTextLength); err != nil {
			return err
		}
	}

	b.productionDate = d.ProductionDate
	b.preparer = preparer
	b.producedQuantity = d.ProducedQuantity
	b.grade = grade
	b.status = status
	b.batchType = d.Type

	if d.Type.IsDonation() {
		b.arrivalDate = d.ArrivalDate
		b.originGroup = originGroup
	} else {
		b.arrivalDate = nil
		b.originGroup = nil
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (b *Batch) ID() uint { return b.id }
func (b *Batch) ProductionDate() time.Time { return b.productionDate }
func (b *Batch) ArrivalDate() *time.Time { return b.arrivalDate }
func (b *Batch) OriginGroup() *string { return b.originGroup }
func (b *Batch) Preparer() string { return b.preparer }
func (b *Batch) ProducedQuantity() decimal.Decimal { return b.producedQuantity }
func (b *Batch) Grade() string { return b.grade }
func (b *Batch) Status() string { return b.status }
func (b *Batch) Type() Type { return b.batchType }
func (b *Batch) CreatedBy() *uuid.UUID { return b.createdBy }
func (b *Batch) CreatedAt() time.Time { return b.createdAt }
func (b *Batch) UpdatedAt() time.Time { return b.updatedAt }

// IsAvailable reports whether the batch is offered in the session form.
func (b *Batch) IsAvailable() bool {
	return b.status == StatusAvailable
}

// SetID is called by the repository after insert.
func (b *Batch) SetID(id uint) {
	b.id = id
}
