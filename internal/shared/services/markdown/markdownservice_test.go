package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("# Exam schedule\n\nResults are **out**.")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>out</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script> world")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "hello")
	})

	t.Run("strips event handler attributes", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized(`<a href="https://example.com" onclick="steal()">link</a>`)
		require.NoError(t, err)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "example.com")
	})
}

func TestSanitize(t *testing.T) {
	svc := NewService()
	assert.Equal(t, "plain text", svc.Sanitize("plain text"))
	assert.NotContains(t, svc.Sanitize(`<img src=x onerror=alert(1)>`), "onerror")
}
