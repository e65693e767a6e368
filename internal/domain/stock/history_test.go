package stock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preparos/internal/shared/biztime"
)

func TestBuildHistory(t *testing.T) {
	march10 := time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)
	march12 := time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC)

	lines := []SessionConsumption{
		{LineID: 1, Quantity: dec("2"), Session: &SessionRef{ID: 10, HeldAt: march10, Type: "Escala", Facilitator: "Mestre João", Participants: 30}},
		{LineID: 2, Quantity: dec("1.5"), Session: &SessionRef{ID: 11, HeldAt: march12, Type: "Extra", Participants: 12}},
		{LineID: 3, Quantity: dec("9"), Session: nil},
	}
	transfers := []TransferMovement{
		{ID: 5, Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), Destination: "Núcleo Luz", Quantity: dec("4")},
		{ID: 6, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Destination: "Núcleo Sol", Notes: "doação", Quantity: dec("1")},
	}

	history := BuildHistory(lines, transfers)

	require.Len(t, history, 4, "dangling lines are dropped")

	assert.Equal(t, EntryKindSession, history[0].Kind)
	assert.Equal(t, uint(11), history[0].RecordID)
	assert.Equal(t, "Extra", history[0].Title, "title falls back to session type")
	assert.Equal(t, "12 participantes", history[0].Subtitle)

	assert.Equal(t, EntryKindTransfer, history[1].Kind)
	assert.Equal(t, DefaultTransferSubtitle, history[1].Subtitle)
	assert.Equal(t, biztime.StartOfDayUTC(transfers[0].Date), history[1].OccurredAt)

	assert.Equal(t, "Mestre João", history[2].Title)
	require.NotNil(t, history[2].Participants)
	assert.Equal(t, 30, *history[2].Participants)

	assert.Equal(t, "doação", history[3].Subtitle)
}

func TestBuildHistoryTieBreak(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	midnight := biztime.StartOfDayUTC(date)

	lines := []SessionConsumption{
		{LineID: 1, Quantity: dec("1"), Session: &SessionRef{ID: 3, HeldAt: midnight, Type: "Extra"}},
		{LineID: 2, Quantity: dec("1"), Session: &SessionRef{ID: 4, HeldAt: midnight, Type: "Extra"}},
	}
	transfers := []TransferMovement{{ID: 1, Date: date, Destination: "X", Quantity: dec("1")}}

	history := BuildHistory(lines, transfers)

	require.Len(t, history, 3)
	assert.Equal(t, EntryKindTransfer, history[0].Kind)
	assert.Equal(t, uint(4), history[1].RecordID)
	assert.Equal(t, uint(3), history[2].RecordID)
}

func TestBuildHistoryEmpty(t *testing.T) {
	assert.Empty(t, BuildHistory(nil, nil))
}
