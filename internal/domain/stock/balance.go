// Package stock derives balances, flags, movement history and report
// aggregates from fetched rows. Nothing here touches storage and nothing
// is cached: every figure is recomputed from the rows it is given.
package stock

import (
	"github.com/shopspring/decimal"
)

// BatchQuantity is the produced volume of one batch.
type BatchQuantity struct {
	BatchID  uint
	Produced decimal.Decimal
}

// Movement is a quantity taken out of a batch, either a session
// consumption line or a transfer.
type Movement struct {
	BatchID  uint
	Quantity decimal.Decimal
}

// BatchBalance is the derived state of one batch.
type BatchBalance struct {
	BatchID     uint
	Produced    decimal.Decimal
	Consumed    decimal.Decimal
	Transferred decimal.Decimal
	Remaining   decimal.Decimal
}

// ComputeBalances returns one balance per batch, in the order of batches.
// Movements referencing a batch not in batches are ignored. Remaining may
// be negative when records over-consume a batch.
func ComputeBalances(batches []BatchQuantity, consumption []Movement, transfers []Movement) []BatchBalance {
	consumed := SumByBatch(consumption)
	transferred := SumByBatch(transfers)

	balances := make([]BatchBalance, 0, len(batches))
	for _, b := range batches {
		c := consumed[b.BatchID]
		t := transferred[b.BatchID]
		balances = append(balances, BatchBalance{
			BatchID:     b.BatchID,
			Produced:    b.Produced,
			Consumed:    c,
			Transferred: t,
			Remaining:   b.Produced.Sub(c).Sub(t),
		})
	}
	return balances
}

// SumByBatch groups movements by batch id and sums their quantities.
// Batches without movements are absent from the map; the zero decimal
// returned for a missing key is the correct total.
func SumByBatch(movements []Movement) map[uint]decimal.Decimal {
	totals := make(map[uint]decimal.Decimal)
	for _, m := range movements {
		totals[m.BatchID] = totals[m.BatchID].Add(m.Quantity)
	}
	return totals
}

// TotalAvailable sums the strictly positive remaining balances.
// Depleted and over-consumed batches contribute zero.
func TotalAvailable(balances []BatchBalance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		if b.Remaining.IsPositive() {
			total = total.Add(b.Remaining)
		}
	}
	return total
}
