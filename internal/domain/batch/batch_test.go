package batch

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() Details {
	origin := "Núcleo Estrela"
	arrival := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	return Details{
		ProductionDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		ArrivalDate:      &arrival,
		OriginGroup:      &origin,
		Preparer:         " Mestre Antônio ",
		ProducedQuantity: decimal.NewFromInt(20),
		Grade:            "1º grau",
		Type:             TypeDonation,
	}
}

func TestNewBatch(t *testing.T) {
	t.Run("donation keeps origin fields", func(t *testing.T) {
		owner := uuid.New()
		b, err := NewBatch(validDetails(), &owner)
		require.NoError(t, err)

		assert.Equal(t, "Mestre Antônio", b.Preparer())
		assert.Equal(t, StatusAvailable, b.Status())
		assert.True(t, b.IsAvailable())
		require.NotNil(t, b.OriginGroup())
		assert.Equal(t, "Núcleo Estrela", *b.OriginGroup())
		assert.NotNil(t, b.ArrivalDate())
		assert.Equal(t, &owner, b.CreatedBy())
	})

	t.Run("local batch clears donation fields", func(t *testing.T) {
		d := validDetails()
		d.Type = TypeLocal
		b, err := NewBatch(d, nil)
		require.NoError(t, err)

		assert.Nil(t, b.ArrivalDate())
		assert.Nil(t, b.OriginGroup())
	})

	tests := []struct {
		name   string
		mutate func(d *Details)
	}{
		{"missing preparer", func(d *Details) { d.Preparer = "  " }},
		{"zero quantity", func(d *Details) { d.ProducedQuantity = decimal.Zero }},
		{"negative quantity", func(d *Details) { d.ProducedQuantity = decimal.NewFromInt(-1) }},
		{"unknown type", func(d *Details) { d.Type = "Compra" }},
		{"missing production date", func(d *Details) { d.ProductionDate = time.Time{} }},
		{"quantity beyond three places", func(d *Details) { d.ProducedQuantity = decimal.RequireFromString("1.2345") }},
		{"quantity rounding to zero", func(d *Details) { d.ProducedQuantity = decimal.RequireFromString("0.0004") }},
		{"preparer over 255 characters", func(d *Details) { d.Preparer = strings.Repeat("ô", 256) }},
		{"grade over 100 characters", func(d *Details) { d.Grade = strings.Repeat("º", 101) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			_, err := NewBatch(d, nil)
			assert.Error(t, err)
		})
	}
}

func TestBatchUpdateReclassifies(t *testing.T) {
	b, err := NewBatch(validDetails(), nil)
	require.NoError(t, err)

	d := validDetails()
	d.Type = TypeLocal
	d.Status = StatusDepleted
	require.NoError(t, b.Update(d))

	assert.Equal(t, TypeLocal, b.Type())
	assert.Nil(t, b.OriginGroup())
	assert.Nil(t, b.ArrivalDate())
	assert.Equal(t, StatusDepleted, b.Status())
	assert.False(t, b.IsAvailable())
}

func TestBatchTextAndScaleLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Details)
	}{
		{"accented preparer at 255 characters", func(d *Details) { d.Preparer = strings.Repeat("ã", 255) }},
		{"accented grade at 100 characters", func(d *Details) { d.Grade = strings.Repeat("º", 100) }},
		{"quantity with three places", func(d *Details) { d.ProducedQuantity = decimal.RequireFromString("1.235") }},
		{"quantity with trailing zeros", func(d *Details) { d.ProducedQuantity = decimal.RequireFromString("2.50000") }},
		{"long origin on a local batch is ignored", func(d *Details) {
			d.Type = TypeLocal
			long := strings.Repeat("x", 300)
			d.OriginGroup = &long
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			_, err := NewBatch(d, nil)
			assert.NoError(t, err)
		})
	}

	t.Run("long origin on a donation is rejected", func(t *testing.T) {
		d := validDetails()
		long := strings.Repeat("é", 256)
		d.OriginGroup = &long
		_, err := NewBatch(d, nil)
		assert.EqualError(t, err, "origin group exceeds maximum length of 255 characters")
	})
}
