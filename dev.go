package herald

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender by writing emails to a local directory instead
// of delivering them. Each send produces an .html file with the rendered body
// and a .json sidecar with the envelope, for eyeballing during development.
type DevSender struct {
	dir string
}

// NewDevSender creates a DevSender writing into dir. The directory is created
// on first send if it does not exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// devEnvelope is the metadata written next to each captured email.
type devEnvelope struct {
	From        string            `json:"from,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	Subject     string            `json:"subject"`
	To          []string          `json:"to"`
	CC          []string          `json:"cc,omitempty"`
	BCC         []string          `json:"bcc,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Attachments []string          `json:"attachments,omitempty"`
	Text        string            `json:"text,omitempty"`
	SentAt      time.Time         `json:"sent_at"`
}

// Send implements Sender.
func (s *DevSender) Send(_ context.Context, email *Email) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	base := fmt.Sprintf("%s_%s_%s",
		time.Now().UTC().Format("20060102T150405"),
		uuid.NewString()[:8],
		slugify(email.Subject),
	)

	if err := os.WriteFile(filepath.Join(s.dir, base+".html"), []byte(email.HTML), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	env := devEnvelope{
		From:    email.From,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		To:      email.To,
		CC:      email.CC,
		BCC:     email.BCC,
		Headers: email.Headers,
		Text:    email.Text,
		SentAt:  time.Now().UTC(),
	}
	for _, a := range email.Attachments {
		env.Attachments = append(env.Attachments, a.Filename)
	}

	meta, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

// slugify reduces a subject to a short filesystem-safe fragment.
func slugify(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > 40 {
		out = out[:40]
	}
	if out == "" {
		out = "email"
	}
	return out
}
