package app

import (
	"errors"
	"fmt"

	"github.com/piwi3910/PlankLayout/internal/model"
)

// Exports holds the output paths of a run. Empty paths are skipped.
type Exports struct {
	PDF      string
	Labels   string
	XLSX     string
	DXF      string
	PNG      string
	PNGScale int
}

// Any reports whether at least one export was requested.
func (e Exports) Any() bool {
	return e.PDF != "" || e.Labels != "" || e.XLSX != "" || e.DXF != "" || e.PNG != ""
}

// Config holds everything a run needs. Nil pointer fields fall back to the
// application config loaded from ConfigPath.
type Config struct {
	LayoutPath string // HCL layout file or directory
	RoomsPath  string // CSV, XLSX or DXF room list
	ConfigPath string

	Room      *model.Dimensions
	Plank     *model.Dimensions
	Staggered *bool
	Randomize *bool
	Seed      *int64

	Compare bool
	Exports Exports

	LogLevel  string
	LogFormat string
}

// NewConfig validates c and fills defaults.
func NewConfig(c Config) (*Config, error) {
	if c.LayoutPath != "" && c.RoomsPath != "" {
		return nil, errors.New("a layout path and a room list cannot be combined")
	}
	if c.Compare && c.Exports.Any() {
		return nil, errors.New("exports are not written in compare mode")
	}
	if c.Exports.PNGScale == 0 {
		c.Exports.PNGScale = 2
	}
	if c.Exports.PNGScale < 0 {
		return nil, fmt.Errorf("png scale must be positive, got %d", c.Exports.PNGScale)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	return &c, nil
}

// base applies the flag overrides to the configured defaults.
func (c *Config) base(defaults model.AppConfig) model.LayoutConfig {
	cfg := defaults.Layout()
	if c.Room != nil {
		cfg.Room = *c.Room
	}
	if c.Plank != nil {
		cfg.Plank = *c.Plank
	}
	if c.Staggered != nil {
		cfg.Staggered = *c.Staggered
	}
	if c.Randomize != nil {
		cfg.RandomizeLengths = *c.Randomize
	}
	return cfg
}
