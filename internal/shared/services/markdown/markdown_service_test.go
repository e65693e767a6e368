package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	got, err := svc.ToHTMLSanitized("## Novidades\n\n- relatório em **XLSX**\n\n<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Contains(t, got, "<h2>Novidades</h2>")
	assert.Contains(t, got, "<strong>XLSX</strong>")
	assert.NotContains(t, got, "<script>")
}

func TestStripTags(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "entregue ao núcleo", svc.StripTags("  <b>entregue</b> ao núcleo<script>x</script> "))
	assert.Equal(t, "Sul & Norte", svc.StripTags("Sul & Norte"))
}
