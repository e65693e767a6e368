package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"preparos/internal/application/batch/dto"
	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
	"preparos/internal/domain/stock"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/logger"
)

type GetBatchQuery struct {
	ID uint
}

// GetBatchUseCase returns a batch with its balance and its unified
// movement history.
type GetBatchUseCase struct {
	batchRepo    batch.Repository
	sessionRepo  session.Repository
	transferRepo transfer.Repository
	threshold    decimal.Decimal
	logger       logger.Interface
}

func NewGetBatchUseCase(
	batchRepo batch.Repository,
	sessionRepo session.Repository,
	transferRepo transfer.Repository,
	threshold decimal.Decimal,
	logger logger.Interface,
) *GetBatchUseCase {
	return &GetBatchUseCase{
		batchRepo:    batchRepo,
		sessionRepo:  sessionRepo,
		transferRepo: transferRepo,
		threshold:    threshold,
		logger:       logger,
	}
}

func (uc *GetBatchUseCase) Execute(ctx context.Context, query GetBatchQuery) (*dto.BatchDetailDTO, error) {
	b, err := uc.batchRepo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	lines, err := uc.sessionRepo.ListLinesByBatch(ctx, b.ID())
	if err != nil {
		uc.logger.Errorw("failed to load batch consumption", "batch_id", b.ID(), "error", err)
		return nil, fmt.Errorf("failed to load batch consumption: %w", err)
	}

	batchID := b.ID()
	transfers, _, err := uc.transferRepo.List(ctx, transfer.ListFilter{BatchID: &batchID})
	if err != nil {
		uc.logger.Errorw("failed to load batch transfers", "batch_id", b.ID(), "error", err)
		return nil, fmt.Errorf("failed to load batch transfers: %w", err)
	}

	consumption := make([]stock.Movement, 0, len(lines))
	history := make([]stock.SessionConsumption, 0, len(lines))
	for _, l := range lines {
		consumption = append(consumption, stock.Movement{BatchID: batchID, Quantity: l.Line.Quantity()})
		entry := stock.SessionConsumption{LineID: l.Line.ID(), Quantity: l.Line.Quantity()}
		if l.Session != nil {
			entry.Session = &stock.SessionRef{
				ID:           l.Session.ID(),
				HeldAt:       l.Session.HeldAt(),
				Type:         string(l.Session.Type()),
				Facilitator:  l.Session.Facilitator(),
				Participants: l.Session.Participants(),
			}
		}
		history = append(history, entry)
	}

	outgoing := make([]stock.Movement, 0, len(transfers))
	transferMovements := make([]stock.TransferMovement, 0, len(transfers))
	for _, t := range transfers {
		outgoing = append(outgoing, stock.Movement{BatchID: batchID, Quantity: t.Quantity()})
		transferMovements = append(transferMovements, stock.TransferMovement{
			ID:          t.ID(),
			Date:        t.Date(),
			Destination: t.Destination(),
			Notes:       t.Notes(),
			Quantity:    t.Quantity(),
		})
	}

	balances := stock.ComputeBalances(
		[]stock.BatchQuantity{{BatchID: batchID, Produced: b.ProducedQuantity()}},
		consumption,
		outgoing,
	)

	return &dto.BatchDetailDTO{
		Batch:   *dto.ToBatchDTO(b),
		Balance: dto.ToBalanceDTO(balances[0], uc.threshold),
		History: dto.ToHistoryDTOs(stock.BuildHistory(history, transferMovements)),
	}, nil
}
