package scale

import (
	"fmt"
	"math"
	"time"
)

// Time maps a time domain onto a numeric range.
type Time struct {
	d0, d1 time.Time
	r0, r1 float64
}

// NewTime returns a time scale with the given range. The initial domain is
// the first day of 2000 in local time.
func NewTime(r0, r1 float64) *Time {
	d0 := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)
	return &Time{d0: d0, d1: d0.AddDate(0, 0, 1), r0: r0, r1: r1}
}

func (s *Time) Domain() (time.Time, time.Time) {
	return s.d0, s.d1
}

func (s *Time) SetDomain(d0, d1 time.Time) *Time {
	s.d0, s.d1 = d0, d1
	return s
}

func (s *Time) Range() (float64, float64) {
	return s.r0, s.r1
}

func (s *Time) SetRange(r0, r1 float64) *Time {
	s.r0, s.r1 = r0, r1
	return s
}

func (s *Time) Map(t time.Time) float64 {
	span := s.d1.Sub(s.d0)
	if span == 0 {
		return s.r0
	}
	return interpolate(s.r0, s.r1, float64(t.Sub(s.d0))/float64(span))
}

func (s *Time) Invert(r float64) time.Time {
	f := normalize(s.r0, s.r1, r)
	span := s.d1.Sub(s.d0)
	return s.d0.Add(time.Duration(math.Round(f * float64(span))))
}

// Nice extends the domain to boundaries of the interval TickInterval picks
// for count ticks. A degenerate domain is left untouched.
func (s *Time) Nice(count int) *Time {
	if s.d0.Equal(s.d1) {
		return s
	}
	iv := TickInterval(s.d0, s.d1, count)
	s.d0, s.d1 = niceBounds(s.d0, s.d1, s.d1.Before(s.d0), iv.Floor, iv.Ceil)
	return s
}

// NiceInterval extends the domain to boundaries of iv.
func (s *Time) NiceInterval(iv Interval) *Time {
	s.d0, s.d1 = niceBounds(s.d0, s.d1, s.d1.Before(s.d0), iv.Floor, iv.Ceil)
	return s
}

// Ticks returns interval boundaries inside the domain, ends included.
func (s *Time) Ticks(count int) []time.Time {
	lo, hi := s.d0, s.d1
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	iv := TickInterval(lo, hi, count)
	return iv.Range(lo, hi.Add(time.Millisecond))
}

// TickFormat returns the multi-resolution formatter: the finest non-zero
// calendar field decides the layout.
func (s *Time) TickFormat(int) func(time.Time) string {
	return FormatTime
}

// FormatTime labels t by its finest non-zero calendar field.
func FormatTime(t time.Time) string {
	switch {
	case t.Nanosecond()/int(time.Millisecond) != 0:
		return fmt.Sprintf(`.%03d`, t.Nanosecond()/int(time.Millisecond))
	case t.Second() != 0:
		return t.Format(`:05`)
	case t.Minute() != 0:
		return t.Format(`03:04`)
	case t.Hour() != 0:
		return t.Format(`03 PM`)
	case t.Day() != 1 && t.Weekday() != time.Sunday:
		return t.Format(`Mon 02`)
	case t.Day() != 1:
		return t.Format(`Jan 02`)
	case t.Month() != time.January:
		return t.Format(`January`)
	default:
		return t.Format(`2006`)
	}
}
