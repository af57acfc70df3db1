package config

import (
	"time"

	"github.com/alexisbeaulieu97/fieldkit/internal/autoresize"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/suggest"
	"github.com/alexisbeaulieu97/fieldkit/internal/validation"
)

// Config is the fieldkit configuration document.
type Config struct {
	Locale        string              `yaml:"locale" validate:"omitempty,locale"`
	LogLevel      string              `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	SettleDelayMS int                 `yaml:"settle_delay_ms" validate:"min=1,max=5000"`
	Messages      validation.Messages `yaml:"messages"`
	Demo          Demo                `yaml:"demo"`
}

// Demo tunes the input system demo.
type Demo struct {
	EmailDomains         []string          `yaml:"email_domains" validate:"dive,hostname_rfc1123"`
	TitleMaxLength       int               `yaml:"title_max_length" validate:"min=1"`
	ContentMaxLength     int               `yaml:"content_max_length" validate:"min=1"`
	DescriptionMaxLength int               `yaml:"description_max_length" validate:"min=1"`
	ContentRows          autoresize.Policy `yaml:"content_rows"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Locale:        "en",
		LogLevel:      "info",
		SettleDelayMS: int(field.DefaultSettleDelay / time.Millisecond),
		Demo: Demo{
			EmailDomains:         append([]string(nil), suggest.DefaultDomains...),
			TitleMaxLength:       50,
			ContentMaxLength:     500,
			DescriptionMaxLength: 200,
			ContentRows:          autoresize.TerminalPolicy(3, 8),
		},
	}
}

// SettleDelay returns the blur settle delay as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

// Catalog returns the message overrides layered over the locale catalog.
func (c *Config) Catalog() validation.Messages {
	return c.Messages.Merge(validation.MessagesFor(c.Locale))
}
