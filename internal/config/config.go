package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/normalize"
)

// Config holds all runtime configuration for a docpay run.
type Config struct {
	DSN       string
	FilePath  string
	LogFormat string // "text" or "json"

	Doctor  string // doctor filter, "all" selects everyone
	From    string // inclusive start date, sheet date formats accepted
	To      string // inclusive end date
	OutPath string // export destination, "-" for stdout

	Workers  int
	Activate bool
	Force    bool

	// ReferrerColumns overrides the built-in referring-doctor header
	// candidates. Loaded from the YAML config file.
	ReferrerColumns []string `yaml:"referrer_columns"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	ReferrerColumns []string `yaml:"referrer_columns"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.ReferrerColumns = yc.ReferrerColumns
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}

// DateRange parses the --from/--to flags. Zero times are returned for unset
// flags; callers fall back to the snapshot's own date bounds.
func (c *Config) DateRange() (time.Time, time.Time, error) {
	var from, to time.Time
	if c.From != "" {
		t := normalize.ParseDate(c.From)
		if t == nil {
			return from, to, fmt.Errorf("unparseable --from date %q", c.From)
		}
		from = *t
	}
	if c.To != "" {
		t := normalize.ParseDate(c.To)
		if t == nil {
			return from, to, fmt.Errorf("unparseable --to date %q", c.To)
		}
		to = *t
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, fmt.Errorf("--to %q is before --from %q", c.To, c.From)
	}
	return from, to, nil
}
