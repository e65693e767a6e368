package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/transfer"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/services/markdown"
)

// TransferInput is a transfer form submission. Notes may contain markup,
// which is stripped before storage.
type TransferInput struct {
	BatchID     uint
	Date        string
	Destination string
	Quantity    decimal.Decimal
	Notes       string
}

func (in TransferInput) toDetails(sanitizer markdown.MarkdownService) (transfer.Details, error) {
	date, err := biztime.ParseDate(in.Date)
	if err != nil {
		return transfer.Details{}, errors.NewValidationError("invalid transfer date", err.Error())
	}
	return transfer.Details{
		BatchID:     in.BatchID,
		Date:        date,
		Destination: sanitizer.StripTags(in.Destination),
		Quantity:    in.Quantity,
		Notes:       sanitizer.StripTags(in.Notes),
	}, nil
}

func ensureBatchExists(ctx context.Context, batchRepo batch.Repository, id uint) error {
	existing, err := batchRepo.ExistingIDs(ctx, []uint{id})
	if err != nil {
		return fmt.Errorf("failed to check batch: %w", err)
	}
	if len(existing) == 0 {
		return errors.NewValidationError("unknown batch", fmt.Sprintf("batch %d not found", id))
	}
	return nil
}
