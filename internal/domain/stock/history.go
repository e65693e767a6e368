package stock

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"preparos/internal/shared/biztime"
)

// EntryKind tags a history entry with the record it came from.
type EntryKind string

const (
	EntryKindSession  EntryKind = "session"
	EntryKindTransfer EntryKind = "transfer"
)

// DefaultTransferSubtitle is shown for transfers recorded without notes.
const DefaultTransferSubtitle = "Saída externa"

// SessionRef is the parent session of a consumption line.
type SessionRef struct {
	ID           uint
	HeldAt       time.Time
	Type         string
	Facilitator  string
	Participants int
}

// SessionConsumption is one consumption line of a batch joined with its
// session. Session is nil when the line is dangling.
type SessionConsumption struct {
	LineID   uint
	Quantity decimal.Decimal
	Session  *SessionRef
}

// TransferMovement is one transfer out of a batch.
type TransferMovement struct {
	ID          uint
	Date        time.Time
	Destination string
	Notes       string
	Quantity    decimal.Decimal
}

// HistoryEntry is one row of the unified movement history of a batch.
// RecordID is the session id for session entries and the transfer id for
// transfer entries.
type HistoryEntry struct {
	Kind         EntryKind
	RecordID     uint
	OccurredAt   time.Time
	Quantity     decimal.Decimal
	Title        string
	Subtitle     string
	Participants *int
	Destination  string
	Notes        string
}

// BuildHistory merges consumption lines and transfers into one list
// ordered newest first. Transfers carry a calendar date only and are placed
// at local midnight of that day. On equal instants transfers come before
// sessions, then higher record ids first. Lines without a session are
// dropped.
func BuildHistory(lines []SessionConsumption, transfers []TransferMovement) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(lines)+len(transfers))

	for _, l := range lines {
		if l.Session == nil {
			continue
		}
		participants := l.Session.Participants
		title := l.Session.Facilitator
		if title == "" {
			title = l.Session.Type
		}
		entries = append(entries, HistoryEntry{
			Kind:         EntryKindSession,
			RecordID:     l.Session.ID,
			OccurredAt:   l.Session.HeldAt,
			Quantity:     l.Quantity,
			Title:        title,
			Subtitle:     fmt.Sprintf("%d participantes", participants),
			Participants: &participants,
		})
	}

	for _, t := range transfers {
		subtitle := t.Notes
		if subtitle == "" {
			subtitle = DefaultTransferSubtitle
		}
		entries = append(entries, HistoryEntry{
			Kind:        EntryKindTransfer,
			RecordID:    t.ID,
			OccurredAt:  biztime.StartOfDayUTC(t.Date),
			Quantity:    t.Quantity,
			Title:       t.Destination,
			Subtitle:    subtitle,
			Destination: t.Destination,
			Notes:       t.Notes,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		if a.Kind != b.Kind {
			return a.Kind == EntryKindTransfer
		}
		return a.RecordID > b.RecordID
	})

	return entries
}
