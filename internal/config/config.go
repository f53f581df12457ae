// Package config holds the optional nordea-parser.yaml configuration. The
// defaults mirror the current Nordea exports; the file exists for older
// statement layouts and for pinning one of the amount-parsing variants.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fredrikluo/nordea-parser/internal/amount"
	"github.com/fredrikluo/nordea-parser/internal/dateparse"
)

// Config is the top-level configuration.
type Config struct {
	Debit  DebitConfig  `yaml:"debit"`
	Credit CreditConfig `yaml:"credit"`
	Output OutputConfig `yaml:"output"`
}

// DebitConfig describes the debit-card CSV export.
type DebitConfig struct {
	AmountHeader      string `yaml:"amount_header"`
	DescriptionHeader string `yaml:"description_header"`
	DateHeader        string `yaml:"date_header"`
	DateLayout        string `yaml:"date_layout"` // Go reference layout
	Encoding          string `yaml:"encoding"`    // "utf-8" or "latin1"
}

// CreditConfig describes the credit-card text export.
type CreditConfig struct {
	Locale             string `yaml:"locale"`
	GroupSeparator     string `yaml:"group_separator"` // "auto", "space" or "none"
	RequireIntegerPart bool   `yaml:"require_integer_part"`
}

// OutputConfig controls the report.
type OutputConfig struct {
	WithDate bool `yaml:"with_date"`
}

// Default returns the configuration matching current Nordea exports.
func Default() *Config {
	return &Config{
		Debit: DebitConfig{
			AmountHeader:      "Beløp",
			DescriptionHeader: "Tittel",
			DateHeader:        "Dato",
			DateLayout:        "02.01.2006",
			Encoding:          "utf-8",
		},
		Credit: CreditConfig{
			Locale:         dateparse.DefaultLocale,
			GroupSeparator: string(amount.GroupSeparatorAuto),
		},
		Output: OutputConfig{WithDate: true},
	}
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values early, before any file is parsed.
func (c *Config) Validate() error {
	switch c.Debit.Encoding {
	case "", "utf-8", "latin1":
	default:
		return fmt.Errorf("unknown debit encoding %q (want utf-8 or latin1)", c.Debit.Encoding)
	}

	if _, err := amount.NewExtractor(c.AmountOptions()); err != nil {
		return fmt.Errorf("credit config: %w", err)
	}

	ok := false
	for _, l := range dateparse.Locales() {
		if c.Credit.Locale == l {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("unsupported credit locale %q", c.Credit.Locale)
	}
	return nil
}

// AmountOptions returns the amount-extraction policy for the credit pipeline.
func (c *Config) AmountOptions() amount.Options {
	return amount.Options{
		GroupSeparator:     amount.GroupSeparatorMode(c.Credit.GroupSeparator),
		RequireIntegerPart: c.Credit.RequireIntegerPart,
	}
}

// Latin1 reports whether the debit CSV needs ISO-8859-1 decoding.
func (c *Config) Latin1() bool { return c.Debit.Encoding == "latin1" }
