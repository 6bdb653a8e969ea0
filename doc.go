// Package herald sends notification emails, either as plain messages or as
// templated HTML alert reports, over a pluggable transport.
//
// The package separates email sending (via providers) from message
// composition, allowing easy swapping of transports while keeping the same
// template system.
//
// # Architecture
//
// Three main components:
//
//   - Sender: Interface that transport providers implement
//   - Renderer: Renders HTML templates with YAML frontmatter inside a layout
//   - Mailer: High-level client combining composition and delivery
//
// # Usage
//
// Sending a templated alert over SMTP:
//
//	import (
//		"context"
//
//		"github.com/dmitrymomot/herald"
//		"github.com/dmitrymomot/herald/smtp"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		cfg, err := smtp.LoadConfig("config.ini")
//		if err != nil {
//			panic(err)
//		}
//		sender := smtp.New(cfg)
//
//		// nil renderer = embedded default templates
//		m := herald.New(sender, nil, herald.Config{})
//
//		err = m.SendAlert(ctx, herald.AlertParams{
//			Report: herald.Report{
//				From: "etl@example.com",
//				To:   []string{"ops@example.com"},
//			},
//			Kind:    herald.KindSuccess,
//			Title:   "ETL Process Complete",
//			Message: "All ETL processes completed successfully.",
//		})
//		if err != nil {
//			panic(err)
//		}
//	}
//
// Plain sends go through Send with SendParams (recipients, subject, body,
// attachment paths); SendRaw delivers a pre-built Email unchanged.
//
// # Alert Template
//
// The embedded alert template renders a colored banner keyed on the alert
// kind (success, warning, danger, info), the markdown message, and any
// optional sections supplied in AlertParams: summary stats, a data table
// with footer, a per-file status list, error details, and an action button.
// Sections render only when their data is present.
//
// Custom templates are HTML files with optional YAML frontmatter:
//
//	---
//	Subject: "{{.Title}}"
//	---
//	<h1>{{.Title}}</h1>
//	{{.Message}}
//
// Subject fields support Go template syntax for dynamic subjects.
//
// # Attachments
//
// Attachment paths are resolved through a FileSource: the local filesystem by
// default, or storage.S3 for object storage. Content types come from magic
// bytes with an extension fallback, and image attachments are embedded inline
// with a Content-ID.
//
// # Transports
//
// Built-in providers: smtp (authenticated SMTP relay), resend (Resend API),
// and DevSender (writes emails to a local directory for development). Any
// type implementing the Sender interface works:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *herald.Email) error {
//		// deliver using your provider's API
//		return nil
//	}
//
// # Errors
//
// Failures surface as sentinel errors matched with errors.Is:
//
//   - ErrInvalidConfig: missing or malformed configuration
//   - ErrNoRecipient, ErrInvalidAddress: bad recipient input
//   - ErrInvalidTable: table rows not matching declared columns
//   - ErrAttachmentNotFound: attachment path did not resolve to a file
//   - ErrTemplateNotFound, ErrLayoutNotFound, ErrRenderFailed: rendering
//   - ErrConnectionFailed: relay unreachable or credentials rejected
//   - ErrSendFailed: relay rejected the message
//
// No error is swallowed and nothing is retried; callers own any retry policy.
package herald
