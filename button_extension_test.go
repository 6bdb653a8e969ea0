package herald

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func renderWithButtons(t *testing.T, source string) string {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(NewButtonExtension()))
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(source), &buf))
	return buf.String()
}

func TestButtonExtension_RendersButton(t *testing.T) {
	t.Parallel()

	html := renderWithButtons(t, "[!button|Get Started](https://example.com/start)")

	require.Contains(t, html, `<a href="https://example.com/start" class="btn">Get Started</a>`)
}

func TestButtonExtension_EscapesLabelAndURL(t *testing.T) {
	t.Parallel()

	html := renderWithButtons(t, `[!button|<b>bold</b>](https://example.com/?a=1&b=2)`)

	require.NotContains(t, html, "<b>bold</b>")
	require.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt;")
	require.Contains(t, html, "a=1&amp;b=2")
}

func TestButtonExtension_IgnoresRegularLinks(t *testing.T) {
	t.Parallel()

	html := renderWithButtons(t, "[just a link](https://example.com)")

	require.NotContains(t, html, "btn")
	require.Contains(t, html, `<a href="https://example.com">just a link</a>`)
}

func TestButtonExtension_MalformedSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{"missing closing bracket", "[!button|Label(https://example.com)"},
		{"missing url", "[!button|Label]"},
		{"unclosed url", "[!button|Label](https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			html := renderWithButtons(t, tt.source)
			require.NotContains(t, html, `class="btn"`)
		})
	}
}
