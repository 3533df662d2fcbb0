package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParsePolicy decides what happens to an input record that cannot be
// parsed.
type ParsePolicy string

const (
	// drop the record, log it, keep going
	ParsePolicy_Skip ParsePolicy = "SKIP"
	// fail the whole run on the first bad record
	ParsePolicy_Abort ParsePolicy = "ABORT"
)

func NewParsePolicy(s string) (*ParsePolicy, error) {
	policies := map[string]ParsePolicy{
		"SKIP":  ParsePolicy_Skip,
		"ABORT": ParsePolicy_Abort,
	}
	for k, v := range policies {
		if strings.EqualFold(k, s) {
			return &v, nil
		}
	}

	return nil, fmt.Errorf("could not convert '%s' to known parse policy", s)
}

type Config struct {
	Holdings struct {
		ParsePolicy string `yaml:"parse_policy"`
	} `yaml:"holdings"`
	Quotes struct {
		ParsePolicy string `yaml:"parse_policy"`
	} `yaml:"quotes"`
	Staging struct {
		Dsn string `yaml:"dsn"`
	} `yaml:"staging"`
	Chart struct {
		Title        string  `yaml:"title"`
		WidthInches  float64 `yaml:"width_inches"`
		HeightInches float64 `yaml:"height_inches"`
	} `yaml:"chart"`
}

// Default returns the config used when no file is given: lenient parsing,
// an in-memory staging store and a 12x6 inch chart.
func Default() *Config {
	c := &Config{}
	c.Holdings.ParsePolicy = string(ParsePolicy_Skip)
	c.Quotes.ParsePolicy = string(ParsePolicy_Skip)
	c.Staging.Dsn = ":memory:"
	c.Chart.Title = "Portfolio Value Over Time"
	c.Chart.WidthInches = 12
	c.Chart.HeightInches = 6
	return c
}

// Load reads a yaml config file over the defaults. An empty path means no
// file was given and the defaults apply as-is.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	c := Default()
	if err := yaml.Unmarshal(contents, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return c, nil
}

func (c *Config) Validate() error {
	if _, err := NewParsePolicy(c.Holdings.ParsePolicy); err != nil {
		return fmt.Errorf("holdings.parse_policy: %w", err)
	}
	if _, err := NewParsePolicy(c.Quotes.ParsePolicy); err != nil {
		return fmt.Errorf("quotes.parse_policy: %w", err)
	}
	if c.Staging.Dsn == "" {
		return fmt.Errorf("staging.dsn cannot be empty")
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %.1fx%.1f", c.Chart.WidthInches, c.Chart.HeightInches)
	}

	return nil
}

// HoldingsParsePolicy returns the holdings policy, falling back to skip
// for configs built by hand and never validated.
func (c *Config) HoldingsParsePolicy() ParsePolicy {
	p, err := NewParsePolicy(c.Holdings.ParsePolicy)
	if err != nil {
		return ParsePolicy_Skip
	}
	return *p
}

func (c *Config) QuotesParsePolicy() ParsePolicy {
	p, err := NewParsePolicy(c.Quotes.ParsePolicy)
	if err != nil {
		return ParsePolicy_Skip
	}
	return *p
}
