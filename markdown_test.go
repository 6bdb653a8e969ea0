package herald

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRenderer_BasicFormatting(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer(nil)

	html, err := r.render("All processes completed **successfully**.")
	require.NoError(t, err)
	require.Contains(t, string(html), "<strong>successfully</strong>")
}

func TestMarkdownRenderer_StripsScripts(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer(nil)

	html, err := r.render(`Hello <script>alert("pwn")</script> world`)
	require.NoError(t, err)
	require.NotContains(t, string(html), "<script")
	require.Contains(t, string(html), "Hello")
	require.Contains(t, string(html), "world")
}

func TestMarkdownRenderer_ButtonSyntax(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer(nil)

	html, err := r.render("[!button|View Details](https://dashboard.example.com)")
	require.NoError(t, err)
	require.Contains(t, string(html), `href="https://dashboard.example.com"`)
	require.Contains(t, string(html), `class="btn"`)
	require.Contains(t, string(html), "View Details")
}

func TestMarkdownRenderer_CustomPolicy(t *testing.T) {
	t.Parallel()

	// Strict policy strips all markup, leaving only text.
	r := newMarkdownRenderer(bluemonday.StrictPolicy())

	html, err := r.render("some **bold** text")
	require.NoError(t, err)
	require.NotContains(t, string(html), "<strong>")
	require.Contains(t, string(html), "bold")
}
