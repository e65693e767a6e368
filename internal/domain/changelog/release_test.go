package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatest(t *testing.T) {
	tests := []struct {
		name     string
		releases []Release
		want     string
	}{
		{"empty", nil, ""},
		{"single", []Release{{Version: "1.0.0"}}, "v1.0.0"},
		{"unordered", []Release{{Version: "1.2.0"}, {Version: "1.10.0"}, {Version: "v1.9.1"}}, "v1.10.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Latest(tt.releases))
		})
	}
}
