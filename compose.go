package herald

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/mail"
	"path/filepath"

	"github.com/dmitrymomot/herald/storage"
)

// FileSource resolves attachment paths to readable content.
// The default implementation reads the local filesystem; storage.S3 fetches
// from object storage instead.
type FileSource interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// SendParams contains parameters for a plain (non-templated) send.
type SendParams struct {
	To      []string // At least one recipient required
	CC      []string
	BCC     []string
	From    string // Override default sender
	ReplyTo string
	Subject string
	Body    string
	HTML    bool // Body is HTML; otherwise plain text

	AttachmentPaths []string     // Files loaded through the configured FileSource
	Attachments     []Attachment // Pre-loaded attachments
	Headers         map[string]string
	Tags            Tags
}

// Compose builds a ready-to-send Email from the params. It validates
// recipients, resolves attachments through the FileSource, and preserves the
// caller's recipient order. On any error no partial Email is returned.
func (m *Mailer) Compose(ctx context.Context, params SendParams) (*Email, error) {
	if len(params.To) == 0 {
		return nil, ErrNoRecipient
	}
	if err := validateAddresses(params.To, params.CC, params.BCC); err != nil {
		return nil, err
	}
	if params.From != "" {
		if _, err := mail.ParseAddress(params.From); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, params.From)
		}
	}

	attachments, err := m.loadAttachments(ctx, params.AttachmentPaths)
	if err != nil {
		return nil, err
	}
	attachments = append(attachments, params.Attachments...)

	email := &Email{
		To:          params.To,
		CC:          params.CC,
		BCC:         params.BCC,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		Subject:     params.Subject,
		Headers:     params.Headers,
		Tags:        params.Tags,
		Attachments: attachments,
	}

	if params.HTML {
		email.HTML = params.Body
		email.Text = plainText(params.Body)
	} else {
		email.Text = params.Body
	}

	return email, nil
}

// validateAddresses checks every address in the given lists.
func validateAddresses(lists ...[]string) error {
	for _, list := range lists {
		for _, addr := range list {
			if _, err := mail.ParseAddress(addr); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
			}
		}
	}
	return nil
}

// loadAttachments reads each path through the FileSource and builds
// attachment parts. Images become inline parts addressed by Content-ID, the
// same convention mail clients use for embedded logos.
func (m *Mailer) loadAttachments(ctx context.Context, paths []string) ([]Attachment, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	attachments := make([]Attachment, 0, len(paths))
	for _, p := range paths {
		f, err := m.files.Open(ctx, p)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrAttachmentNotFound, p)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrAttachmentNotFound, p, err)
		}

		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAttachmentNotFound, p, err)
		}

		name := filepath.Base(p)
		contentType := storage.DetectMIME(content, name)

		att := Attachment{
			Filename:    name,
			ContentType: contentType,
			Content:     content,
		}
		if storage.IsImageMIME(contentType) {
			att.ContentID = name
		}
		attachments = append(attachments, att)
	}

	return attachments, nil
}
