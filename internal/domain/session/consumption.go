package session

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"preparos/internal/domain/shared"
)

// ConsumptionLine is the quantity of one batch served at one session.
// A session holds at most one line per batch.
type ConsumptionLine struct {
	id        uint
	sessionID uint
	batchID   uint
	quantity  decimal.Decimal
}

func ReconstructConsumptionLine(id, sessionID, batchID uint, quantity decimal.Decimal) *ConsumptionLine {
	return &ConsumptionLine{id: id, sessionID: sessionID, batchID: batchID, quantity: quantity}
}

func (l *ConsumptionLine) ID() uint { return l.id }
func (l *ConsumptionLine) SessionID() uint { return l.sessionID }
func (l *ConsumptionLine) BatchID() uint { return l.batchID }
func (l *ConsumptionLine) Quantity() decimal.Decimal { return l.quantity }

func (l *ConsumptionLine) SetID(id uint) {
	l.id = id
}

// LineInput is a line as submitted by a client. BatchID 0 means no batch
// was picked.
type LineInput struct {
	BatchID  uint
	Quantity decimal.Decimal
}

// ErrNoValidLines is returned when no submitted line has both a batch and
// a positive quantity.
var ErrNoValidLines = fmt.Errorf("at least one consumption line with a batch and a positive quantity is required")

// NormalizeLines drops lines without a batch or with a non-positive
// quantity and merges lines for the same batch by summing their quantities.
// A kept line finer than the stored scale, or a merged total above the
// column maximum, fails the whole set. The result is ordered by batch id.
func NormalizeLines(inputs []LineInput) ([]LineInput, error) {
	merged := make(map[uint]decimal.Decimal)
	for _, in := range inputs {
		if in.BatchID == 0 || !in.Quantity.IsPositive() {
			continue
		}
		if err := shared.ValidateQuantity(fmt.Sprintf("quantity for batch %d", in.BatchID), in.Quantity); err != nil {
			return nil, err
		}
		merged[in.BatchID] = merged[in.BatchID].Add(in.Quantity)
	}
	if len(merged) == 0 {
		return nil, ErrNoValidLines
	}
	for batchID, qty := range merged {
		if err := shared.ValidateQuantity(fmt.Sprintf("quantity for batch %d", batchID), qty); err != nil {
			return nil, err
		}
	}

	lines := make([]LineInput, 0, len(merged))
	for batchID, qty := range merged {
		lines = append(lines, LineInput{BatchID: batchID, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].BatchID < lines[j].BatchID })
	return lines, nil
}

// LineUpdate changes the quantity of a stored line.
type LineUpdate struct {
	LineID   uint
	Quantity decimal.Decimal
}

// LineDiff is the set of writes that turns the stored lines into the
// desired ones. Unchanged lines appear nowhere.
type LineDiff struct {
	Insert []LineInput
	Update []LineUpdate
	Delete []uint
}

func (d LineDiff) IsEmpty() bool {
	return len(d.Insert) == 0 && len(d.Update) == 0 && len(d.Delete) == 0
}

// DiffLines compares stored lines with normalized desired lines keyed by
// batch id.
func DiffLines(stored []*ConsumptionLine, desired []LineInput) LineDiff {
	var diff LineDiff

	want := make(map[uint]decimal.Decimal, len(desired))
	for _, d := range desired {
		want[d.BatchID] = d.Quantity
	}

	seen := make(map[uint]bool, len(stored))
	for _, line := range stored {
		qty, keep := want[line.batchID]
		if !keep || seen[line.batchID] {
			diff.Delete = append(diff.Delete, line.id)
			continue
		}
		seen[line.batchID] = true
		if !qty.Equal(line.quantity) {
			diff.Update = append(diff.Update, LineUpdate{LineID: line.id, Quantity: qty})
		}
	}

	for _, d := range desired {
		if !seen[d.BatchID] {
			diff.Insert = append(diff.Insert, d)
		}
	}

	return diff
}

// BatchIDs returns the batch ids referenced by lines.
func BatchIDs(lines []LineInput) []uint {
	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.BatchID)
	}
	return ids
}
