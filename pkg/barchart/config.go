package barchart

import (
	"os"
	"time"

	"github.com/admpub/json5"
)

type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type Config struct {
	// Target is the selector of the element the chart draws into.
	Target      string  `json:"target"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Margin      Margin  `json:"margin"`
	AxisPadding float64 `json:"axisPadding"`
	TickSize    float64 `json:"tickSize"`
	BarPadding  float64 `json:"barPadding"`
	// Nice rounds both axis domains outward to round values.
	Nice bool `json:"nice"`
	// Ease names the easing of animated transitions, "cubic-in-out" when empty.
	Ease string `json:"ease"`
	// Duration of animated transitions in milliseconds.
	Duration int `json:"duration"`

	// MouseOver and MouseOut make the chart interactive when either is set.
	MouseOver func(Point) `json:"-"`
	MouseOut  func()      `json:"-"`
}

var defaults = Config{
	Target:      `#chart`,
	Width:       450,
	Height:      130,
	Margin:      Margin{Top: 15, Right: 0, Bottom: 35, Left: 60},
	AxisPadding: 5,
	TickSize:    10,
	BarPadding:  13,
	Nice:        true,
	Duration:    250,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() Config {
	return defaults
}

func (c Config) Interactive() bool {
	return c.MouseOver != nil || c.MouseOut != nil
}

// Dimensions returns the drawable width and height inside the margins.
func (c Config) Dimensions() (float64, float64) {
	w := c.Width - c.Margin.Left - c.Margin.Right
	h := c.Height - c.Margin.Top - c.Margin.Bottom
	return w, h
}

func (c Config) TransitionDuration() time.Duration {
	if c.Duration <= 0 {
		return 0
	}
	return time.Duration(c.Duration) * time.Millisecond
}

type Option func(*Config)

// WithConfig replaces the whole configuration, as loaded by LoadConfig.
// Fields left zero in cfg stay zero; start from DefaultConfig or LoadConfig
// to keep the defaults.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func WithTarget(selector string) Option {
	return func(c *Config) {
		c.Target = selector
	}
}

func WithSize(width, height float64) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithMargin replaces all four sides. A side left zero is zero, not the
// default.
func WithMargin(m Margin) Option {
	return func(c *Config) {
		c.Margin = m
	}
}

func WithAxisPadding(p float64) Option {
	return func(c *Config) {
		c.AxisPadding = p
	}
}

func WithTickSize(size float64) Option {
	return func(c *Config) {
		c.TickSize = size
	}
}

func WithBarPadding(p float64) Option {
	return func(c *Config) {
		c.BarPadding = p
	}
}

func WithNice(on bool) Option {
	return func(c *Config) {
		c.Nice = on
	}
}

func WithEase(name string) Option {
	return func(c *Config) {
		c.Ease = name
	}
}

func WithDuration(d time.Duration) Option {
	return func(c *Config) {
		c.Duration = int(d / time.Millisecond)
	}
}

func OnMouseOver(fn func(Point)) Option {
	return func(c *Config) {
		c.MouseOver = fn
	}
}

func OnMouseOut(fn func()) Option {
	return func(c *Config) {
		c.MouseOut = fn
	}
}

// LoadConfig reads a JSON5 configuration file. Keys that are missing or
// null keep their default.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), err
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (Config, error) {
	config := DefaultConfig()
	if err := json5.Unmarshal(b, &config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}
