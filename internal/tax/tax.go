// Package tax splits a collected sales total into sales and the county and
// state sales taxes contained in it.
package tax

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tax rates and the number of integer digits the report
// has room for.
type Config struct {
	CountyRate float64 `yaml:"county_rate"`
	StateRate  float64 `yaml:"state_rate"`
	Width      int     `yaml:"width"`
}

func DefaultConfig() Config {
	return Config{
		CountyRate: 0.0275,
		StateRate:  0.065,
		Width:      6,
	}
}

// LoadConfig reads a YAML config. Fields missing from the file keep their
// default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.CountyRate < 0 || c.CountyRate >= 1 {
		errs = append(errs, fmt.Errorf("county_rate %v out of [0, 1)", c.CountyRate))
	}
	if c.StateRate < 0 || c.StateRate >= 1 {
		errs = append(errs, fmt.Errorf("state_rate %v out of [0, 1)", c.StateRate))
	}
	if c.Width < 1 || c.Width > 15 {
		errs = append(errs, fmt.Errorf("width %d out of [1, 15]", c.Width))
	}

	return errors.Join(errs...)
}

// Fits reports whether total's integer part can be printed in the report.
func (c Config) Fits(total float64) bool {
	return math.Abs(math.Trunc(total)) < math.Pow10(c.Width-1)
}

type Breakdown struct {
	Total  float64
	Sales  float64
	County float64
	State  float64
}

// Calculate splits total. A total that is not positive carries no tax.
func Calculate(cfg Config, total float64) Breakdown {
	if total <= 0 {
		return Breakdown{Total: total, Sales: total}
	}

	sales := total / (1 + cfg.CountyRate + cfg.StateRate)

	return Breakdown{
		Total:  total,
		Sales:  sales,
		County: sales * cfg.CountyRate,
		State:  sales * cfg.StateRate,
	}
}

// Tax is the combined county and state tax.
func (b Breakdown) Tax() float64 {
	return b.County + b.State
}

// Write prints the monthly report with amounts right-aligned.
func (b Breakdown) Write(w io.Writer, cfg Config, month string, year int) error {
	width := cfg.Width + 2
	_, err := fmt.Fprintf(w,
		"%s %d\n"+
			"----------------\n"+
			"Total Collected:  $%*.2f\n"+
			"Sales:            $%*.2f\n"+
			"County Sales Tax: $%*.2f\n"+
			"State Sales Tax:  $%*.2f\n"+
			"Total Sales Tax:  $%*.2f\n",
		month, year,
		width, b.Total,
		width, b.Sales,
		width, b.County,
		width, b.State,
		width, b.Tax(),
	)

	return err
}
