// Package axis draws tick marks, labels and a domain path for a scale into a
// surface group, in the manner of d3.svg.axis.
package axis

import (
	"strconv"

	"github.com/admpub/barchart/pkg/scale"
	"github.com/admpub/barchart/pkg/surface"
)

type Orient string

const (
	Bottom Orient = `bottom`
	Left   Orient = `left`
)

// Tick is one tick of a scale: a join key, a position in range units and
// the formatted label.
type Tick struct {
	Key   string
	Pos   float64
	Label string
}

// Scaler is the scale capability an axis needs.
type Scaler interface {
	Range() (float64, float64)
	TickValues(count int, format func(float64) string) []Tick
}

// Axis renders one scale. The zero value is not usable; use New.
type Axis struct {
	Scale         Scaler
	Orient        Orient
	Ticks         int
	TickPadding   float64
	InnerTickSize float64
	OuterTickSize float64
	// Format overrides the scale's label formatter for numeric scales.
	Format func(float64) string
}

// New returns an axis with d3 defaults: 10 ticks, padding 3, tick size 6.
func New(s Scaler, orient Orient) *Axis {
	return &Axis{
		Scale:         s,
		Orient:        orient,
		Ticks:         scale.DefaultTicks,
		TickPadding:   3,
		InnerTickSize: 6,
		OuterTickSize: 6,
	}
}

// TickSize sets inner and outer tick sizes.
func (a *Axis) TickSize(size float64) *Axis {
	a.InnerTickSize = size
	a.OuterTickSize = size
	return a
}

func (a *Axis) SetTicks(n int) *Axis {
	a.Ticks = n
	return a
}

func (a *Axis) SetTickPadding(p float64) *Axis {
	a.TickPadding = p
	return a
}

// Render reconciles the ticks and domain path of g against the scale. With
// a nil transition attributes are applied immediately; otherwise positions
// move on the transition's timing and entering ticks fade in.
func (a *Axis) Render(g *surface.Selection, tr *surface.Transition) {
	ticks := a.Scale.TickValues(a.Ticks, a.Format)
	tick := g.SelectAll(`.tick`).Data(len(ticks), func(i int) string { return ticks[i].Key })

	enter := tick.Enter().Append(`g`).Attr(`class`, `tick`)
	if tr != nil {
		enter.Attr(`opacity`, 1e-6)
	} else {
		enter.Attr(`opacity`, 1)
	}
	enter.Append(`line`)
	enter.Append(`text`)
	if tr != nil {
		tr.For(tick.Exit()).Remove()
	} else {
		tick.Exit().Remove()
	}

	inner := a.InnerTickSize
	label := inner
	if label < 0 {
		label = 0
	}
	label += a.TickPadding

	transform := func(i int) string {
		if a.Orient == Left {
			return `translate(0,` + formatFloat(ticks[i].Pos) + `)`
		}
		return `translate(` + formatFloat(ticks[i].Pos) + `,0)`
	}

	line := tick.Select(`line`)
	text := tick.Select(`text`).Text(func(i int) string { return ticks[i].Label })
	switch a.Orient {
	case Left:
		line.Attr(`x2`, -inner).Attr(`y2`, 0)
		text.Attr(`x`, -label).Attr(`y`, 0).Attr(`dy`, `.32em`).Attr(`text-anchor`, `end`)
	default:
		line.Attr(`x2`, 0).Attr(`y2`, inner)
		text.Attr(`x`, 0).Attr(`y`, label).Attr(`dy`, `.71em`).Attr(`text-anchor`, `middle`)
	}

	path := g.Select(`path.domain`)
	if path.Empty() {
		path = g.Append(`path`).Attr(`class`, `domain`)
	}
	d := a.domainPath()

	if tr == nil {
		tick.Attr(`transform`, transform).Attr(`opacity`, 1)
		path.Attr(`d`, d)
		return
	}
	tr.For(tick).Attr(`transform`, transform).Attr(`opacity`, 1)
	tr.For(path).Attr(`d`, d)
}

func (a *Axis) domainPath() string {
	r0, r1 := a.Scale.Range()
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	outer := formatFloat(a.OuterTickSize)
	if a.Orient == Left {
		outer = formatFloat(-a.OuterTickSize)
		return `M` + outer + `,` + formatFloat(r0) + `H0V` + formatFloat(r1) + `H` + outer
	}
	return `M` + formatFloat(r0) + `,` + outer + `V0H` + formatFloat(r1) + `V` + outer
}

type timeScaler struct {
	s *scale.Time
}

// Time adapts a time scale. Ticks are keyed by their Unix millisecond.
func Time(s *scale.Time) Scaler {
	return timeScaler{s: s}
}

func (t timeScaler) Range() (float64, float64) { return t.s.Range() }

func (t timeScaler) TickValues(count int, _ func(float64) string) []Tick {
	values := t.s.Ticks(count)
	format := t.s.TickFormat(count)
	out := make([]Tick, len(values))
	for i, v := range values {
		out[i] = Tick{
			Key:   strconv.FormatInt(v.UnixMilli(), 10),
			Pos:   t.s.Map(v),
			Label: format(v),
		}
	}
	return out
}

type linearScaler struct {
	s *scale.Linear
}

// Linear adapts a linear scale. Ticks are keyed by their value.
func Linear(s *scale.Linear) Scaler {
	return linearScaler{s: s}
}

func (l linearScaler) Range() (float64, float64) { return l.s.Range() }

func (l linearScaler) TickValues(count int, format func(float64) string) []Tick {
	values := l.s.Ticks(count)
	if format == nil {
		format = l.s.TickFormat(count)
	}
	out := make([]Tick, len(values))
	for i, v := range values {
		out[i] = Tick{
			Key:   formatFloat(v),
			Pos:   l.s.Map(v),
			Label: format(v),
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
