package scale

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultTicks is the tick count used when Nice or Ticks get a count <= 0.
const DefaultTicks = 10

// Linear maps a continuous numeric domain onto a numeric range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a scale over the domain [0,1] with the given range.
func NewLinear(r0, r1 float64) *Linear {
	return &Linear{d0: 0, d1: 1, r0: r0, r1: r1}
}

func (s *Linear) Domain() (float64, float64) {
	return s.d0, s.d1
}

func (s *Linear) SetDomain(d0, d1 float64) *Linear {
	s.d0, s.d1 = d0, d1
	return s
}

func (s *Linear) Range() (float64, float64) {
	return s.r0, s.r1
}

func (s *Linear) SetRange(r0, r1 float64) *Linear {
	s.r0, s.r1 = r0, r1
	return s
}

// Map returns the range value for v. A degenerate domain maps everything to
// the start of the range.
func (s *Linear) Map(v float64) float64 {
	return interpolate(s.r0, s.r1, normalize(s.d0, s.d1, v))
}

// Invert returns the domain value for a range value.
func (s *Linear) Invert(r float64) float64 {
	return interpolate(s.d0, s.d1, normalize(s.r0, s.r1, r))
}

// Nice extends the domain outward to multiples of a round tick step.
// A degenerate or non-finite domain is left untouched.
func (s *Linear) Nice(count int) *Linear {
	if count <= 0 {
		count = DefaultTicks
	}
	for i := 0; i < 2; i++ {
		_, _, step := linearTickRange(s.d0, s.d1, count)
		if step <= 0 {
			return s
		}
		s.d0, s.d1 = niceBounds(s.d0, s.d1, s.d1 < s.d0, func(v float64) float64 {
			return math.Floor(v/step) * step
		}, func(v float64) float64 {
			return math.Ceil(v/step) * step
		})
	}
	return s
}

// Ticks returns round values inside the domain, about count of them.
func (s *Linear) Ticks(count int) []float64 {
	if count <= 0 {
		count = DefaultTicks
	}
	start, stop, step := linearTickRange(s.d0, s.d1, count)
	if step <= 0 {
		if s.d0 == s.d1 && !math.IsNaN(s.d0) && !math.IsInf(s.d0, 0) {
			return []float64{s.d0}
		}
		return nil
	}
	first := math.Round(start / step)
	var ticks []float64
	for i := 0.0; ; i++ {
		v := (first + i) * step
		if v >= stop {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// TickFormat returns a formatter with thousands separators and as many
// decimals as the tick step needs.
func (s *Linear) TickFormat(count int) func(float64) string {
	if count <= 0 {
		count = DefaultTicks
	}
	_, _, step := linearTickRange(s.d0, s.d1, count)
	return NumberFormat(precision(step))
}

// NumberFormat formats with comma grouping and a fixed number of decimals.
func NumberFormat(decimals int) func(float64) string {
	if decimals < 0 {
		decimals = 0
	}
	layout := `#,###.` + strings.Repeat(`#`, decimals)
	return func(v float64) string {
		if v == 0 {
			// avoid "-0"
			v = 0
		}
		return humanize.FormatFloat(layout, v)
	}
}

func precision(step float64) int {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	p := -int(math.Floor(math.Log10(step) + .01))
	if p < 0 {
		return 0
	}
	return p
}

// linearTickRange picks a 1, 2 or 5 times 10^k step for about m ticks and
// returns the first tick, a stop bound and the step.
func linearTickRange(d0, d1 float64, m int) (start, stop, step float64) {
	lo, hi := d0, d1
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return lo, hi, 0
	}
	step = math.Pow(10, math.Floor(math.Log10(span/float64(m))))
	err := float64(m) / span * step
	switch {
	case err <= .15:
		step *= 10
	case err <= .35:
		step *= 5
	case err <= .75:
		step *= 2
	}
	start = math.Ceil(lo/step) * step
	stop = math.Floor(hi/step)*step + step*.5
	return start, stop, step
}

// niceBounds floors the lower end and ceils the upper end, preserving a
// reversed domain.
func niceBounds[T any](d0, d1 T, reversed bool, floor, ceil func(T) T) (T, T) {
	if reversed {
		return ceil(d0), floor(d1)
	}
	return floor(d0), ceil(d1)
}

func normalize(a, b, v float64) float64 {
	if b == a {
		return 0
	}
	return (v - a) / (b - a)
}

func interpolate(a, b, t float64) float64 {
	return a + (b-a)*t
}
