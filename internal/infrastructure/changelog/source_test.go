package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSource(t *testing.T) {
	releases, err := NewEmbeddedSource().Releases()
	require.NoError(t, err)
	require.NotEmpty(t, releases)

	for i := 1; i < len(releases); i++ {
		assert.False(t, releases[i].Date.After(releases[i-1].Date), "releases must be newest first")
	}
}

func TestYAMLSource(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "sorted newest first",
			raw:  "releases:\n  - {version: \"1.2.0\", date: \"2024-01-02\", title: a}\n  - {version: \"1.10.0\", date: \"2024-02-02\", title: b}\n",
			want: []string{"v1.10.0", "v1.2.0"},
		},
		{
			name:    "invalid version",
			raw:     "releases:\n  - {version: \"latest\", date: \"2024-01-02\"}\n",
			wantErr: true,
		},
		{
			name:    "invalid date",
			raw:     "releases:\n  - {version: \"1.0.0\", date: \"02/01/2024\"}\n",
			wantErr: true,
		},
		{
			name: "empty document",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			releases, err := NewYAMLSource([]byte(tt.raw)).Releases()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got := make([]string, 0, len(releases))
			for _, r := range releases {
				got = append(got, r.Version)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
