package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID  int
	Raw string
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSliceWithID(t *testing.T) {
	parse := func(r *row) (*int, error) {
		n, err := strconv.Atoi(r.Raw)
		if err != nil {
			return nil, errors.New("not a number")
		}
		return &n, nil
	}
	getID := func(r *row) int { return r.ID }

	t.Run("skips nil items", func(t *testing.T) {
		got, err := MapSliceWithID([]*row{{ID: 1, Raw: "10"}, nil, {ID: 3, Raw: "30"}}, parse, getID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 30, *got[1])
	})

	t.Run("error names the item", func(t *testing.T) {
		_, err := MapSliceWithID([]*row{{ID: 9, Raw: "x"}}, parse, getID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item ID 9")
	})
}
