package herald

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate_WithFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: "{{.Title}}"
Title: Alert Notification
---
<h1>{{.Title}}</h1>`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, "{{.Title}}", tmpl.Metadata["Subject"])
	require.Equal(t, "Alert Notification", tmpl.Metadata["Title"])
	require.Equal(t, "<h1>{{.Title}}</h1>", tmpl.Body)
}

func TestParseTemplate_NoFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte("<p>just a body</p>")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, "<p>just a body</p>", tmpl.Body)
}

func TestParseTemplate_CRLF(t *testing.T) {
	t.Parallel()

	content := []byte("---\r\nSubject: Hello\r\n---\r\n<p>body</p>")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, "Hello", tmpl.Metadata["Subject"])
	require.Equal(t, "<p>body</p>", tmpl.Body)
}

func TestParseTemplate_UnclosedFrontmatter(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate([]byte("---\nSubject: Hello\n<p>body</p>"))
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParseTemplate_EmptyAfterDelimiter(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate([]byte("---\n"))
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParseTemplate_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplate([]byte("---\n: [broken\n---\nbody"))
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParseTemplate_EmptyFrontmatter(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\n---\nbody"))
	require.NoError(t, err)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, "body", tmpl.Body)
}
