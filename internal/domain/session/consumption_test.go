package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalizeLines(t *testing.T) {
	t.Run("drops incomplete lines and merges duplicates", func(t *testing.T) {
		lines, err := NormalizeLines([]LineInput{
			{BatchID: 2, Quantity: qty("1.5")},
			{BatchID: 0, Quantity: qty("3")},
			{BatchID: 1, Quantity: qty("0")},
			{BatchID: 3, Quantity: qty("-2")},
			{BatchID: 2, Quantity: qty("0.5")},
			{BatchID: 1, Quantity: qty("1")},
		})
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.Equal(t, uint(1), lines[0].BatchID)
		assert.True(t, lines[0].Quantity.Equal(qty("1")))
		assert.Equal(t, uint(2), lines[1].BatchID)
		assert.True(t, lines[1].Quantity.Equal(qty("2")))
	})

	t.Run("rejects when nothing is left", func(t *testing.T) {
		_, err := NormalizeLines([]LineInput{{BatchID: 0, Quantity: qty("1")}, {BatchID: 4, Quantity: decimal.Zero}})
		assert.ErrorIs(t, err, ErrNoValidLines)
	})

	t.Run("rejects quantities finer than the stored scale", func(t *testing.T) {
		for _, q := range []string{"1.2345", "0.0004"} {
			_, err := NormalizeLines([]LineInput{{BatchID: 1, Quantity: qty("1")}, {BatchID: 2, Quantity: qty(q)}})
			if assert.Error(t, err, q) {
				assert.Equal(t, "quantity for batch 2 supports at most 3 decimal places", err.Error())
				assert.NotErrorIs(t, err, ErrNoValidLines)
			}
		}
	})

	t.Run("rejects a merged total above the column maximum", func(t *testing.T) {
		_, err := NormalizeLines([]LineInput{{BatchID: 5, Quantity: qty("9999999")}, {BatchID: 5, Quantity: qty("1")}})
		assert.EqualError(t, err, "quantity for batch 5 must not exceed 9999999.999")
	})

	t.Run("normalized lines diff cleanly against stored values", func(t *testing.T) {
		lines, err := NormalizeLines([]LineInput{{BatchID: 1, Quantity: qty("1.235")}})
		require.NoError(t, err)
		stored := []*ConsumptionLine{ReconstructConsumptionLine(10, 1, 1, qty("1.2350"))}
		diff := DiffLines(stored, lines)
		assert.Empty(t, diff.Insert)
		assert.Empty(t, diff.Update)
		assert.Empty(t, diff.Delete)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NormalizeLines(nil)
		assert.ErrorIs(t, err, ErrNoValidLines)
	})
}

func TestDiffLines(t *testing.T) {
	stored := []*ConsumptionLine{
		ReconstructConsumptionLine(10, 1, 100, qty("2")),
		ReconstructConsumptionLine(11, 1, 101, qty("1")),
		ReconstructConsumptionLine(12, 1, 102, qty("4")),
	}
	desired := []LineInput{
		{BatchID: 100, Quantity: qty("2.0")},
		{BatchID: 101, Quantity: qty("3")},
		{BatchID: 103, Quantity: qty("1")},
	}

	diff := DiffLines(stored, desired)

	assert.Equal(t, []LineInput{{BatchID: 103, Quantity: qty("1")}}, diff.Insert)
	require.Len(t, diff.Update, 1)
	assert.Equal(t, uint(11), diff.Update[0].LineID)
	assert.True(t, diff.Update[0].Quantity.Equal(qty("3")))
	assert.Equal(t, []uint{12}, diff.Delete)
}

func TestDiffLinesIdempotent(t *testing.T) {
	desired := []LineInput{{BatchID: 1, Quantity: qty("2")}, {BatchID: 2, Quantity: qty("0.5")}}
	stored := []*ConsumptionLine{
		ReconstructConsumptionLine(1, 9, 1, qty("2")),
		ReconstructConsumptionLine(2, 9, 2, qty("0.5")),
	}

	assert.True(t, DiffLines(stored, desired).IsEmpty())
}

func TestDiffLinesRemovesStoredDuplicates(t *testing.T) {
	stored := []*ConsumptionLine{
		ReconstructConsumptionLine(1, 9, 1, qty("2")),
		ReconstructConsumptionLine(2, 9, 1, qty("2")),
	}

	diff := DiffLines(stored, []LineInput{{BatchID: 1, Quantity: qty("2")}})

	assert.Empty(t, diff.Insert)
	assert.Empty(t, diff.Update)
	assert.Equal(t, []uint{2}, diff.Delete)
}
