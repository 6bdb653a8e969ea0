package herald

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
)

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for per-stage send logging.
// Without it the mailer stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mailer) {
		if log != nil {
			m.log = log
		}
	}
}

// WithFileSource sets the source attachment paths are resolved against.
// Defaults to the local filesystem.
func WithFileSource(src FileSource) Option {
	return func(m *Mailer) {
		if src != nil {
			m.files = src
		}
	}
}

// WithHTMLPolicy replaces the sanitizer policy applied to markdown-produced
// HTML in alert messages.
func WithHTMLPolicy(policy *bluemonday.Policy) Option {
	return func(m *Mailer) {
		if policy != nil {
			m.markdown = newMarkdownRenderer(policy)
		}
	}
}
