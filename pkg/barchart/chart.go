// Package barchart draws an axis-labelled bar chart of time/value points
// onto a surface and animates the bars when the data changes.
package barchart

import (
	"fmt"
	"strconv"
	"time"

	"github.com/admpub/barchart/pkg/axis"
	"github.com/admpub/barchart/pkg/ease"
	"github.com/admpub/barchart/pkg/scale"
	"github.com/admpub/barchart/pkg/surface"
)

// Point is one bar of the chart.
type Point struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Surface resolves the chart target. *surface.Document implements it.
type Surface interface {
	Select(selector string) *surface.Selection
}

// Chart is not safe for concurrent use.
type Chart struct {
	config  Config
	surface Surface
	ease    ease.Func

	target *surface.Selection
	chart  *surface.Selection
	xg, yg *surface.Selection

	x     *scale.Time
	y     *scale.Linear
	xAxis *axis.Axis
	yAxis *axis.Axis

	data []Point
}

// New applies options over the defaults and draws the empty chart into the
// target element of s.
func New(s Surface, options ...Option) (*Chart, error) {
	c := &Chart{config: DefaultConfig(), surface: s}
	for _, option := range options {
		option(&c.config)
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Chart) init() error {
	cfg := c.config
	w, h := cfg.Dimensions()
	if !(w > 0 && h > 0) {
		return fmt.Errorf(`%w: %sx%s`, ErrInvalidDimensions, num(w), num(h))
	}
	c.target = c.surface.Select(cfg.Target)
	if c.target.Empty() {
		return fmt.Errorf(`%w: %s`, ErrTargetNotFound, cfg.Target)
	}
	c.ease = ease.Default
	if len(cfg.Ease) > 0 {
		c.ease = ease.Get(cfg.Ease)
	}

	c.chart = c.target.
		Attr(`width`, cfg.Width).
		Attr(`height`, cfg.Height).
		Append(`g`).
		Attr(`transform`, translate(cfg.Margin.Left, cfg.Margin.Top))

	c.x = scale.NewTime(0, w)
	c.y = scale.NewLinear(h, 0)

	c.xAxis = axis.New(axis.Time(c.x), axis.Bottom).
		SetTicks(5).
		SetTickPadding(8).
		TickSize(cfg.TickSize)
	c.yAxis = axis.New(axis.Linear(c.y), axis.Left).
		SetTicks(3).
		SetTickPadding(8).
		TickSize(cfg.TickSize)

	c.xg = c.chart.Append(`g`).
		Attr(`class`, `x axis`).
		Attr(`transform`, translate(0, h+cfg.AxisPadding))
	c.xAxis.Render(c.xg, nil)

	c.yg = c.chart.Append(`g`).
		Attr(`class`, `y axis`).
		Attr(`transform`, translate(-cfg.AxisPadding, 0))
	c.yAxis.Render(c.yg, nil)

	if cfg.Interactive() {
		c.target.On(`mousemove`, c.mouseMove)
		c.target.On(`mouseleave`, c.mouseLeave)
	}
	return nil
}

// Config returns the merged configuration.
func (c *Chart) Config() Config { return c.config }

// Dimensions returns the drawable width and height.
func (c *Chart) Dimensions() (float64, float64) { return c.config.Dimensions() }

// X returns the time scale mapping point times to [0, w].
func (c *Chart) X() *scale.Time { return c.x }

// Y returns the linear scale mapping point values to [h, 0].
func (c *Chart) Y() *scale.Linear { return c.y }

// Data returns the points of the last successful render.
func (c *Chart) Data() []Point { return c.data }

// Surface returns the surface the chart was created on.
func (c *Chart) Surface() Surface { return c.surface }

// Group returns the chart group inside the margins.
func (c *Chart) Group() *surface.Selection { return c.chart }

func translate(x, y float64) string {
	return `translate(` + num(x) + `, ` + num(y) + `)`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
