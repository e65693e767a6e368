// Package balance loads the movements of every batch and reduces them to
// balances with the stock package.
package balance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
	"preparos/internal/domain/stock"
	"preparos/internal/domain/transfer"
)

type Calculator struct {
	batchRepo    batch.Repository
	sessionRepo  session.Repository
	transferRepo transfer.Repository
	threshold    decimal.Decimal
}

// NewCalculator falls back to stock.DefaultLowThreshold when threshold is
// not positive.
func NewCalculator(
	batchRepo batch.Repository,
	sessionRepo session.Repository,
	transferRepo transfer.Repository,
	threshold decimal.Decimal,
) *Calculator {
	if !threshold.IsPositive() {
		threshold = stock.DefaultLowThreshold
	}
	return &Calculator{
		batchRepo:    batchRepo,
		sessionRepo:  sessionRepo,
		transferRepo: transferRepo,
		threshold:    threshold,
	}
}

func (c *Calculator) Threshold() decimal.Decimal {
	return c.threshold
}

// Balances returns the balance of each batch keyed by batch id.
func (c *Calculator) Balances(ctx context.Context, batches []*batch.Batch) (map[uint]stock.BatchBalance, error) {
	consumption, transfers, err := c.movements(ctx)
	if err != nil {
		return nil, err
	}

	quantities := make([]stock.BatchQuantity, 0, len(batches))
	for _, b := range batches {
		quantities = append(quantities, stock.BatchQuantity{BatchID: b.ID(), Produced: b.ProducedQuantity()})
	}

	result := make(map[uint]stock.BatchBalance, len(batches))
	for _, bal := range stock.ComputeBalances(quantities, consumption, transfers) {
		result[bal.BatchID] = bal
	}
	return result, nil
}

// TotalAvailable sums the positive balances of all batches.
func (c *Calculator) TotalAvailable(ctx context.Context) (decimal.Decimal, error) {
	batches, err := c.batchRepo.List(ctx, batch.ListFilter{})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list batches: %w", err)
	}
	balances, err := c.Balances(ctx, batches)
	if err != nil {
		return decimal.Zero, err
	}

	list := make([]stock.BatchBalance, 0, len(balances))
	for _, b := range balances {
		list = append(list, b)
	}
	return stock.TotalAvailable(list), nil
}

func (c *Calculator) movements(ctx context.Context) (consumption, transfers []stock.Movement, err error) {
	lines, err := c.sessionRepo.ListLines(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list consumption lines: %w", err)
	}
	consumption = make([]stock.Movement, 0, len(lines))
	for _, l := range lines {
		consumption = append(consumption, stock.Movement{BatchID: l.BatchID(), Quantity: l.Quantity()})
	}

	list, _, err := c.transferRepo.List(ctx, transfer.ListFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	transfers = make([]stock.Movement, 0, len(list))
	for _, t := range list {
		transfers = append(transfers, stock.Movement{BatchID: t.BatchID(), Quantity: t.Quantity()})
	}
	return consumption, transfers, nil
}
