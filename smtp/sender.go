// Package smtp delivers emails over an authenticated SMTP relay using
// go-mail: TLS negotiation per the configured encryption mode, automatic
// auth method discovery, and proper MIME multipart construction.
package smtp

import (
	"bytes"
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/herald"
)

// Sender implements herald.Sender over SMTP.
type Sender struct {
	cfg Config
}

// New creates a new SMTP sender. The config is validated on first use.
func New(cfg Config) *Sender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Sender{cfg: cfg}
}

// Send implements herald.Sender. It opens a connection to the relay,
// authenticates, transmits the message to all recipients (To, CC and BCC)
// and closes the connection on every exit path.
func (s *Sender) Send(ctx context.Context, email *herald.Email) error {
	if err := s.cfg.validate(); err != nil {
		return err
	}

	msg, err := s.buildMessage(email)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %v", herald.ErrInvalidConfig, err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", herald.ErrConnectionFailed, err)
	}
	defer client.Close()

	if err := client.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", herald.ErrSendFailed, err)
	}

	return nil
}

// CheckConnection dials and authenticates against the relay without sending
// anything. Useful for validating configured credentials.
func (s *Sender) CheckConnection(ctx context.Context) error {
	if err := s.cfg.validate(); err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %v", herald.ErrInvalidConfig, err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", herald.ErrConnectionFailed, err)
	}
	defer client.Close()

	return nil
}

// buildMessage converts a herald.Email into a go-mail message.
func (s *Sender) buildMessage(email *herald.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = herald.Recipient(s.cfg.FromName, s.cfg.From)
	}
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: from %q: %v", herald.ErrInvalidAddress, from, err)
	}

	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("%w: to: %v", herald.ErrInvalidAddress, err)
	}
	if len(email.CC) > 0 {
		if err := msg.Cc(email.CC...); err != nil {
			return nil, fmt.Errorf("%w: cc: %v", herald.ErrInvalidAddress, err)
		}
	}
	if len(email.BCC) > 0 {
		if err := msg.Bcc(email.BCC...); err != nil {
			return nil, fmt.Errorf("%w: bcc: %v", herald.ErrInvalidAddress, err)
		}
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("%w: reply-to: %v", herald.ErrInvalidAddress, err)
		}
	}

	msg.Subject(email.Subject)

	// Prefer HTML with a text alternative; fall back to whichever is set.
	switch {
	case email.HTML != "" && email.Text != "":
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	case email.HTML != "":
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
	}

	for key, value := range email.Headers {
		msg.SetGenHeader(mail.Header(key), value)
	}

	for _, att := range email.Attachments {
		opts := []mail.FileOption{
			mail.WithFileContentType(mail.ContentType(att.ContentType)),
		}
		if att.ContentID != "" {
			// Inline part referenced from the HTML body via cid:
			opts = append(opts, mail.WithFileContentID(att.ContentID))
			if err := msg.EmbedReader(att.Filename, bytes.NewReader(att.Content), opts...); err != nil {
				return nil, fmt.Errorf("%w: failed to embed %s: %v", herald.ErrSendFailed, att.Filename, err)
			}
			continue
		}
		if err := msg.AttachReader(att.Filename, bytes.NewReader(att.Content), opts...); err != nil {
			return nil, fmt.Errorf("%w: failed to attach %s: %v", herald.ErrSendFailed, att.Filename, err)
		}
	}

	return msg, nil
}

// clientOptions maps the config to go-mail client options.
func (s *Sender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
	}

	switch s.cfg.Encryption {
	case EncryptionSSL:
		opts = append(opts, mail.WithSSL())
	case EncryptionSTARTTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	case EncryptionNone:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		// Port-based policy: 465 implicit TLS, 587 mandatory STARTTLS,
		// everything else opportunistic (covers port 25 and dev relays).
		switch s.cfg.Port {
		case 465:
			opts = append(opts, mail.WithSSL())
		case 587:
			opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		default:
			opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
		}
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
			mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
		)
	}

	return opts
}
