package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasUnseen(t *testing.T) {
	tests := []struct {
		name         string
		acknowledged string
		latest       string
		want         bool
	}{
		{"never acknowledged", "", "v2.0", true},
		{"same version", "v2.0", "v2.0", false},
		{"prefix optional", "2.0", "v2.0.0", false},
		{"older acknowledged", "v1.9", "v2.0", true},
		{"acknowledged newer", "v2.1", "v2.0", false},
		{"no latest", "v1.0", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasUnseen(tt.acknowledged, tt.latest))
		})
	}
}

func TestSort(t *testing.T) {
	versions := []string{"v1.0", "v2.0", "v1.10"}
	Sort(versions)
	assert.Equal(t, []string{"v2.0", "v1.10", "v1.0"}, versions)
}
