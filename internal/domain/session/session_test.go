package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	heldAt := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)

	t.Run("accented names at 255 characters", func(t *testing.T) {
		_, err := NewSession(Details{
			HeldAt:      heldAt,
			Type:        TypeExtra,
			Facilitator: strings.Repeat("ê", 255),
			Speaker:     strings.Repeat("ã", 255),
		}, nil)
		assert.NoError(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		s, err := NewSession(Details{
			HeldAt:       heldAt,
			Type:         TypeEscalaAnual,
			Facilitator:  " Mestre Carlos ",
			Participants: 42,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Mestre Carlos", s.Facilitator())
		assert.Equal(t, TypeEscalaAnual, s.Type())
		assert.Empty(t, s.Lines())
	})

	tests := []struct {
		name    string
		details Details
	}{
		{"missing time", Details{Type: TypeExtra, Facilitator: "A"}},
		{"unknown type", Details{HeldAt: heldAt, Type: "Festa", Facilitator: "A"}},
		{"missing facilitator", Details{HeldAt: heldAt, Type: TypeExtra}},
		{"negative participants", Details{HeldAt: heldAt, Type: TypeExtra, Facilitator: "A", Participants: -1}},
		{"facilitator over 255 characters", Details{HeldAt: heldAt, Type: TypeExtra, Facilitator: strings.Repeat("ê", 256)}},
		{"reader over 255 characters", Details{HeldAt: heldAt, Type: TypeExtra, Facilitator: "A", Reader: strings.Repeat("ê", 256)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.details, nil)
			assert.Error(t, err)
		})
	}
}

func TestSessionSetIDPropagatesToLines(t *testing.T) {
	s, err := NewSession(Details{HeldAt: time.Now(), Type: TypeCasal, Facilitator: "B"}, nil)
	require.NoError(t, err)

	s.ReplaceLines([]LineInput{{BatchID: 3, Quantity: qty("1")}})
	s.SetID(77)

	require.Len(t, s.Lines(), 1)
	assert.Equal(t, uint(77), s.Lines()[0].SessionID())
}

func TestTypesAreValid(t *testing.T) {
	assert.Len(t, Types, 10)
	for _, typ := range Types {
		assert.True(t, typ.IsValid(), typ)
	}
	assert.False(t, Type("escala").IsValid())
}
