package herald

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, sender Sender) *Mailer {
	t.Helper()
	if sender == nil {
		sender = &MockSender{}
	}
	return New(sender, nil, Config{})
}

func TestCompose_PreservesRecipientOrder(t *testing.T) {
	t.Parallel()

	m := newTestMailer(t, nil)
	to := []string{"c@example.com", "a@example.com", "b@example.com"}

	email, err := m.Compose(context.Background(), SendParams{
		To:      to,
		Subject: "Order check",
		Body:    "hello",
	})
	require.NoError(t, err)
	require.Equal(t, to, email.To)
}

func TestCompose_HTMLBody(t *testing.T) {
	t.Parallel()

	m := newTestMailer(t, nil)

	email, err := m.Compose(context.Background(), SendParams{
		To:      []string{"a@b.com"},
		Subject: "Test",
		Body:    "<p>hi</p>",
		HTML:    true,
	})
	require.NoError(t, err)
	require.Equal(t, "Test", email.Subject)
	require.Equal(t, "<p>hi</p>", email.HTML)
	require.Equal(t, "hi", email.Text)
}

func TestCompose_PlainTextBody(t *testing.T) {
	t.Parallel()

	m := newTestMailer(t, nil)

	email, err := m.Compose(context.Background(), SendParams{
		To:      []string{"a@b.com"},
		Subject: "Test",
		Body:    "just text",
	})
	require.NoError(t, err)
	require.Equal(t, "just text", email.Text)
	require.Empty(t, email.HTML)
}

func TestCompose_NoRecipient(t *testing.T) {
	t.Parallel()

	m := newTestMailer(t, nil)

	email, err := m.Compose(context.Background(), SendParams{Subject: "Test", Body: "x"})
	require.ErrorIs(t, err, ErrNoRecipient)
	require.Nil(t, email)
}

func TestCompose_MalformedAddress(t *testing.T) {
	t.Parallel()

	m := newTestMailer(t, nil)

	tests := []struct {
		name   string
		params SendParams
	}{
		{"bad to", SendParams{To: []string{"not-an-address"}}},
		{"bad cc", SendParams{To: []string{"a@b.com"}, CC: []string{"nope@"}}},
		{"bad from", SendParams{To: []string{"a@b.com"}, From: "broken <"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			email, err := m.Compose(context.Background(), tt.params)
			require.ErrorIs(t, err, ErrInvalidAddress)
			require.Nil(t, email)
		})
	}
}

func TestCompose_AttachmentRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := []byte("%PDF-1.4 fake report content")
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	m := newTestMailer(t, nil)

	email, err := m.Compose(context.Background(), SendParams{
		To:              []string{"a@b.com"},
		Subject:         "Report",
		Body:            "attached",
		AttachmentPaths: []string{path},
	})
	require.NoError(t, err)
	require.Len(t, email.Attachments, 1)
	require.Equal(t, "report.pdf", email.Attachments[0].Filename)
	require.Equal(t, content, email.Attachments[0].Content)
	require.Empty(t, email.Attachments[0].ContentID)
}

func TestCompose_InlineImageAttachment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// Minimal PNG header so magic-byte detection sees an image.
	content := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	m := newTestMailer(t, nil)

	email, err := m.Compose(context.Background(), SendParams{
		To:              []string{"a@b.com"},
		Subject:         "Logo",
		Body:            "inline",
		AttachmentPaths: []string{path},
	})
	require.NoError(t, err)
	require.Len(t, email.Attachments, 1)
	require.Equal(t, "image/png", email.Attachments[0].ContentType)
	require.Equal(t, "logo.png", email.Attachments[0].ContentID)
}

func TestCompose_AttachmentNotFound(t *testing.T) {
	t.Parallel()

	m := newTestMailer(t, nil)

	email, err := m.Compose(context.Background(), SendParams{
		To:              []string{"a@b.com"},
		Subject:         "Report",
		Body:            "attached",
		AttachmentPaths: []string{filepath.Join(t.TempDir(), "missing.pdf")},
	})
	require.ErrorIs(t, err, ErrAttachmentNotFound)
	require.Nil(t, email)
}
