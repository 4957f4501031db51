package barchart

import (
	"sort"

	"github.com/admpub/barchart/pkg/surface"
)

// PointAt returns the point under x, in chart group coordinates: the last
// point at or before the time x maps to, or the first point when the time
// precedes them all. The stored data is assumed ordered by time.
func (c *Chart) PointAt(x float64) (Point, bool) {
	if len(c.data) == 0 {
		return Point{}, false
	}
	t := c.x.Invert(x)
	i := sort.Search(len(c.data), func(i int) bool {
		return !c.data[i].Time.Before(t)
	})
	switch {
	case i < len(c.data) && c.data[i].Time.Equal(t):
		return c.data[i], true
	case i > 0:
		return c.data[i-1], true
	default:
		return c.data[0], true
	}
}

func (c *Chart) mouseMove(ev surface.Event, _ *surface.Element) {
	if c.config.MouseOver == nil {
		return
	}
	x, _ := surface.Pointer(ev, c.chart.Node())
	if p, ok := c.PointAt(x); ok {
		c.config.MouseOver(p)
	}
}

func (c *Chart) mouseLeave(surface.Event, *surface.Element) {
	if c.config.MouseOut != nil {
		c.config.MouseOut()
	}
}
