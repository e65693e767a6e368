package usecases

import (
	"context"
	"fmt"
	"strings"

	"preparos/internal/domain/batch"
	"preparos/internal/domain/session"
	"preparos/internal/shared/errors"
)

// normalizeLines drops empty lines, merges repeated batches and checks
// that every referenced batch exists. It runs before any write.
func normalizeLines(ctx context.Context, batchRepo batch.Repository, inputs []session.LineInput) ([]session.LineInput, error) {
	lines, err := session.NormalizeLines(inputs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	ids := session.BatchIDs(lines)
	existing, err := batchRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check batches: %w", err)
	}
	if len(existing) == len(ids) {
		return lines, nil
	}

	found := make(map[uint]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}
	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}
	return nil, errors.NewValidationError("unknown batch", "batch ids not found: "+strings.Join(missing, ", "))
}
