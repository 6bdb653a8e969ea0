package herald

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDevSender_WritesEmailToDisk(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "outbox")
	sender := NewDevSender(dir)

	err := sender.Send(context.Background(), &Email{
		From:    "etl@example.com",
		To:      []string{"ops@example.com"},
		CC:      []string{"lead@example.com"},
		Subject: "ETL Process Complete",
		HTML:    "<p>done</p>",
		Text:    "done",
		Attachments: []Attachment{
			{Filename: "report.pdf", ContentType: "application/pdf", Content: []byte("x")},
		},
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = filepath.Join(dir, e.Name())
		case ".json":
			jsonFile = filepath.Join(dir, e.Name())
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	require.Contains(t, filepath.Base(htmlFile), "etl-process-complete")

	body, err := os.ReadFile(htmlFile)
	require.NoError(t, err)
	require.Equal(t, "<p>done</p>", string(body))

	meta, err := os.ReadFile(jsonFile)
	require.NoError(t, err)

	var env devEnvelope
	require.NoError(t, json.Unmarshal(meta, &env))
	require.Equal(t, "etl@example.com", env.From)
	require.Equal(t, []string{"ops@example.com"}, env.To)
	require.Equal(t, []string{"lead@example.com"}, env.CC)
	require.Equal(t, "ETL Process Complete", env.Subject)
	require.Equal(t, []string{"report.pdf"}, env.Attachments)
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	require.Equal(t, "etl-process-complete", slugify("ETL Process Complete"))
	require.Equal(t, "email", slugify("!!!"))
	require.Len(t, slugify(strings.Repeat("a", 100)), 40)
}
