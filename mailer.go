package herald

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	texttemplate "text/template"

	"github.com/google/uuid"

	"github.com/dmitrymomot/herald/logger"
	"github.com/dmitrymomot/herald/storage"
	"github.com/dmitrymomot/herald/templates"
)

// Mailer provides high-level email sending with template rendering.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	markdown *markdownRenderer
	files    FileSource
	log      *slog.Logger
	config   Config
}

// New creates a new Mailer. A nil renderer falls back to the embedded default
// templates. Behavior is tuned through functional options.
func New(sender Sender, renderer *Renderer, cfg Config, opts ...Option) *Mailer {
	cfg.applyDefaults()
	if renderer == nil {
		renderer = NewRenderer(templates.FS)
	}

	m := &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.markdown == nil {
		m.markdown = newMarkdownRenderer(nil)
	}
	if m.files == nil {
		m.files = storage.NewLocal("")
	}
	if m.log == nil {
		m.log = logger.NewNope()
	}

	return m
}

// Send composes a plain email from the params and delivers it.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	log := m.log.With(slog.String("send_id", uuid.NewString()))
	log.InfoContext(ctx, "composing email",
		slog.Any("to", params.To), slog.String("subject", params.Subject))

	email, err := m.Compose(ctx, params)
	if err != nil {
		log.ErrorContext(ctx, "compose failed", slog.Any("error", err))
		return err
	}

	return m.deliver(ctx, log, email)
}

// SendAlert renders the alert template from the params and delivers the
// result to the report's recipients.
func (m *Mailer) SendAlert(ctx context.Context, params AlertParams) error {
	log := m.log.With(slog.String("send_id", uuid.NewString()))
	log.InfoContext(ctx, "composing alert email",
		slog.Any("to", params.Report.To),
		slog.String("kind", string(params.Kind)),
		slog.String("title", params.Title))

	email, err := m.ComposeAlert(ctx, params)
	if err != nil {
		log.ErrorContext(ctx, "alert compose failed", slog.Any("error", err))
		return err
	}

	return m.deliver(ctx, log, email)
}

// ComposeAlert builds a ready-to-send Email by rendering the alert template.
// Subject resolution: params.Subject > template frontmatter > Report.Subject
// > config fallback. On any error no partial Email is returned.
func (m *Mailer) ComposeAlert(ctx context.Context, params AlertParams) (*Email, error) {
	if len(params.Report.To) == 0 {
		return nil, ErrNoRecipient
	}
	if err := validateAddresses(params.Report.To, params.Report.CC, params.Report.BCC); err != nil {
		return nil, err
	}

	messageHTML, err := m.markdown.render(params.Message)
	if err != nil {
		return nil, err
	}

	table, err := renderTable(params.Table)
	if err != nil {
		return nil, err
	}

	color := params.Kind.Color()
	data := &alertContext{
		Kind:         params.Kind,
		Title:        params.Title,
		Message:      messageHTML,
		Color:        cssValue(color),
		ColorSoft:    cssValue(rgba(color, 0.1)),
		Table:        table,
		Summary:      params.Summary,
		Files:        params.Files,
		Action:       params.Action,
		ErrorDetails: params.ErrorDetails,
		LogoURL:      params.LogoURL,
		Environment:  params.Environment,
		Timestamp:    params.Timestamp,
		TotalRecords: params.TotalRecords,
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}
	templateName := params.Template
	if templateName == "" {
		templateName = m.config.DefaultTemplate
	}

	result, err := m.renderer.Render(layout, templateName, data)
	if err != nil {
		return nil, err
	}
	m.log.DebugContext(ctx, "alert template rendered",
		slog.String("template", templateName), slog.String("layout", layout))

	subject := params.Subject
	if subject == "" {
		if fromMeta, ok := result.Metadata["Subject"].(string); ok && fromMeta != "" {
			subject, err = m.processSubject(fromMeta, params)
			if err != nil {
				return nil, errors.Join(ErrRenderFailed, err)
			}
		}
	}
	if subject == "" {
		subject = params.Report.Subject
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}

	attachments, err := m.loadAttachments(ctx, params.AttachmentPaths)
	if err != nil {
		return nil, err
	}
	attachments = append(attachments, params.Attachments...)

	return &Email{
		To:          params.Report.To,
		CC:          params.Report.CC,
		BCC:         params.Report.BCC,
		From:        params.Report.From,
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		Tags:        params.Tags,
		Attachments: attachments,
	}, nil
}

// SendRaw sends a pre-built email without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return ErrNoContent
	}

	log := m.log.With(slog.String("send_id", uuid.NewString()))
	return m.deliver(ctx, log, email)
}

// deliver hands the email to the sender and records the outcome.
// Transport errors already carrying a sentinel pass through unchanged.
func (m *Mailer) deliver(ctx context.Context, log *slog.Logger, email *Email) error {
	log.InfoContext(ctx, "delivering email",
		slog.Any("to", email.To), slog.String("subject", email.Subject),
		slog.Int("attachments", len(email.Attachments)))

	if err := m.sender.Send(ctx, email); err != nil {
		log.ErrorContext(ctx, "delivery failed", slog.Any("error", err))
		if errors.Is(err, ErrConnectionFailed) || errors.Is(err, ErrSendFailed) {
			return err
		}
		return errors.Join(ErrSendFailed, err)
	}

	log.InfoContext(ctx, "email delivered")
	return nil
}

// processSubject executes the subject string as a template over the alert
// params, so frontmatter can reference fields like {{.Title}}.
func (m *Mailer) processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
