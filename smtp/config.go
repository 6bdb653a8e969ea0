package smtp

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/herald"
)

// Encryption selects how the connection to the relay is secured.
type Encryption string

// Supported encryption modes. The empty value picks a policy from the port:
// 465 implicit TLS, 587 mandatory STARTTLS, anything else opportunistic.
const (
	EncryptionAuto     Encryption = ""
	EncryptionSSL      Encryption = "ssl"
	EncryptionSTARTTLS Encryption = "starttls"
	EncryptionNone     Encryption = "none"
)

// Config holds SMTP relay connection parameters.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host       string        `env:"SMTP_HOST"`
	Port       int           `env:"SMTP_PORT" envDefault:"587"`
	Username   string        `env:"SMTP_USERNAME"` // optional - some relays allow unauthenticated sends
	Password   string        `env:"SMTP_PASSWORD"` // optional
	Encryption Encryption    `env:"SMTP_ENCRYPTION"`
	From       string        `env:"SMTP_FROM"`      // default sender address
	FromName   string        `env:"SMTP_FROM_NAME"` // optional sender display name
	Timeout    time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}

// defaultTimeout is applied when the config carries no timeout.
const defaultTimeout = 30 * time.Second

func (c Config) validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: smtp server is required", herald.ErrInvalidConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: smtp port %d is out of range", herald.ErrInvalidConfig, c.Port)
	}
	switch c.Encryption {
	case EncryptionAuto, EncryptionSSL, EncryptionSTARTTLS, EncryptionNone:
	default:
		return fmt.Errorf("%w: unknown encryption mode %q", herald.ErrInvalidConfig, c.Encryption)
	}
	return nil
}

// LoadConfig reads relay settings from an INI file with an [smtp] section
// holding server, port, username and password keys, plus the optional
// encryption, from, from_name and timeout keys. Every key can be overridden
// through HERALD_SMTP_* environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	v.SetEnvPrefix("HERALD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", herald.ErrInvalidConfig, err)
	}

	cfg := Config{
		Host:       v.GetString("smtp.server"),
		Port:       v.GetInt("smtp.port"),
		Username:   v.GetString("smtp.username"),
		Password:   v.GetString("smtp.password"),
		Encryption: Encryption(strings.ToLower(v.GetString("smtp.encryption"))),
		From:       v.GetString("smtp.from"),
		FromName:   v.GetString("smtp.from_name"),
		Timeout:    v.GetDuration("smtp.timeout"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
