package herald

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FallbackSubject string `env:"HERALD_FALLBACK_SUBJECT" envDefault:"Alert Notification"`
	DefaultLayout   string `env:"HERALD_DEFAULT_LAYOUT" envDefault:"base.html"`
	DefaultTemplate string `env:"HERALD_DEFAULT_TEMPLATE" envDefault:"alert.html"`
}

// applyDefaults fills zero-valued fields with the documented defaults so a
// zero Config is usable.
func (c *Config) applyDefaults() {
	if c.FallbackSubject == "" {
		c.FallbackSubject = "Alert Notification"
	}
	if c.DefaultLayout == "" {
		c.DefaultLayout = "base.html"
	}
	if c.DefaultTemplate == "" {
		c.DefaultTemplate = "alert.html"
	}
}
