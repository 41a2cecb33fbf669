package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultQuotaBytes mirrors the usual per-origin local storage allowance.
	DefaultQuotaBytes = 5 * 1024 * 1024

	// DefaultMaxAttachmentBytes is the exclusive attachment size limit.
	DefaultMaxAttachmentBytes = 1 * 1024 * 1024
)

// Config holds runtime settings for the diary CLI.
type Config struct {
	DBPath             string `validate:"required"`
	LogLevel           string `validate:"oneof=debug info warn error"`
	QuotaBytes         int64  `validate:"gt=0"`
	MaxAttachmentBytes int64  `validate:"gt=0,ltefield=QuotaBytes"`
	TimeZone           string `validate:"required"`
	DateLayout         string `validate:"required"`
	PlaceholderImage   string `validate:"required"`
	ReadOnly           bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "diary.db"
	c.LogLevel = "warn"
	c.QuotaBytes = DefaultQuotaBytes
	c.MaxAttachmentBytes = DefaultMaxAttachmentBytes
	c.TimeZone = "Local"
	c.DateLayout = "2006/1/2 15:04:05"
	c.PlaceholderImage = "./images/no-image.png"
	c.ReadOnly = false
}

// Validate checks field constraints and that TimeZone names a known zone.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present), and validates the
// result. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
