package barchart

import (
	"fmt"
	"time"

	"github.com/admpub/barchart/pkg/scale"
	"github.com/admpub/barchart/pkg/surface"
	"github.com/admpub/log"
)

type RenderOptions struct {
	// Animate moves the axes through a transition instead of redrawing them
	// in place.
	Animate bool
}

// Render draws data. Columns, bars and overlays are matched to points by
// position. When the bars would be narrower than one unit it returns
// ErrInsufficientSpace and leaves the surface untouched.
func (c *Chart) Render(data []Point, options ...RenderOptions) error {
	var opts RenderOptions
	if len(options) > 0 {
		opts = options[0]
	}
	barWidth := c.barWidth(len(data))
	if barWidth < 1 {
		return fmt.Errorf(`%w: %d points leave bars %s wide`, ErrInsufficientSpace, len(data), num(barWidth))
	}
	log.Debugf(`[barchart] render %d points into %s (animate: %v)`, len(data), c.config.Target, opts.Animate)

	c.renderAxis(data, opts)
	c.renderCols(data, barWidth)
	c.renderBars(data, barWidth)
	if c.config.Interactive() {
		c.renderOverlay(data)
	}
	c.data = append([]Point(nil), data...)
	return nil
}

// Update renders data with animated axes.
func (c *Chart) Update(data []Point) error {
	return c.Render(data, RenderOptions{Animate: true})
}

func (c *Chart) barWidth(n int) float64 {
	w, _ := c.Dimensions()
	return w/float64(n) - c.config.BarPadding
}

func (c *Chart) transition(sel *surface.Selection) *surface.Transition {
	return sel.Transition().Ease(c.ease).Duration(c.config.TransitionDuration())
}

func (c *Chart) renderAxis(data []Point, opts RenderOptions) {
	if t0, t1, ok := scale.TimeExtent(data, pointTime); ok {
		c.x.SetDomain(t0, t1)
	}
	if v0, v1, ok := scale.Extent(data, pointValue); ok {
		c.y.SetDomain(v0, v1)
	}
	if c.config.Nice && len(data) > 0 {
		c.x.Nice(scale.DefaultTicks)
		c.y.Nice(scale.DefaultTicks)
	}

	if !opts.Animate {
		c.xAxis.Render(c.xg, nil)
		c.yAxis.Render(c.yg, nil)
		return
	}
	tr := c.transition(c.chart)
	c.xAxis.Render(c.xg, tr)
	c.yAxis.Render(c.yg, tr)
}

func (c *Chart) renderCols(data []Point, colWidth float64) {
	_, h := c.Dimensions()

	column := c.chart.SelectAll(`.column`).Data(len(data), nil)

	column.Enter().Append(`rect`).
		Attr(`class`, `column`)

	column.Attr(`x`, c.xAt(data)).
		Attr(`rx`, colWidth/2).
		Attr(`ry`, colWidth/2).
		Attr(`width`, colWidth).
		Attr(`y`, 0).
		Attr(`height`, h)

	column.Exit().Remove()
}

func (c *Chart) renderBars(data []Point, barWidth float64) {
	_, h := c.Dimensions()

	bar := c.chart.SelectAll(`.bar`).Data(len(data), nil)

	bar.Enter().Append(`rect`).
		Attr(`class`, `bar`)

	bar.Attr(`x`, c.xAt(data)).
		Attr(`rx`, barWidth/2).
		Attr(`ry`, barWidth/2).
		Attr(`width`, barWidth)
	c.transition(bar).
		Attr(`y`, func(i int) float64 { return c.y.Map(data[i].Value) }).
		Attr(`height`, func(i int) float64 { return h - c.y.Map(data[i].Value) })

	bar.Exit().Remove()
}

// renderOverlay draws transparent full-width rects that receive pointer
// events over the gaps between bars.
func (c *Chart) renderOverlay(data []Point) {
	w, h := c.Dimensions()
	width := w / float64(len(data))

	overlay := c.chart.SelectAll(`.overlay`).Data(len(data), nil)

	overlay.Enter().Append(`rect`).
		Attr(`class`, `overlay`)

	overlay.Attr(`x`, c.xAt(data)).
		Attr(`y`, 0).
		Attr(`width`, width).
		Attr(`height`, h).
		Attr(`fill`, `transparent`)

	overlay.Exit().Remove()
}

func (c *Chart) xAt(data []Point) func(int) float64 {
	return func(i int) float64 {
		return c.x.Map(data[i].Time)
	}
}

func pointTime(p Point) time.Time { return p.Time }

func pointValue(p Point) float64 { return p.Value }
