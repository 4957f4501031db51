package scale

import (
	"math"
	"sort"
	"time"
)

// Unit is a calendar unit a tick Interval counts in.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

const maxIntervalTicks = 10000

// Interval is a calendar unit with a step: ticks land on values whose unit
// number (seconds of the minute, month of the year, ...) is a multiple of Step.
type Interval struct {
	Unit Unit
	Step int64
}

func (iv Interval) step() int64 {
	if iv.Step < 1 {
		return 1
	}
	return iv.Step
}

func (iv Interval) floorUnit(t time.Time) time.Time {
	loc := t.Location()
	switch iv.Unit {
	case Millisecond:
		return t.Truncate(time.Millisecond)
	case Second:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	case Minute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	case Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	case Week:
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		return d.AddDate(0, 0, -int(d.Weekday()))
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	}
}

func (iv Interval) offsetUnit(t time.Time, n int) time.Time {
	switch iv.Unit {
	case Millisecond:
		return t.Add(time.Duration(n) * time.Millisecond)
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return iv.floorUnit(t.AddDate(0, 0, n))
	case Week:
		return iv.floorUnit(t.AddDate(0, 0, 7*n))
	case Month:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}

func (iv Interval) number(t time.Time) int64 {
	switch iv.Unit {
	case Millisecond:
		return t.UnixMilli()
	case Second:
		return int64(t.Second())
	case Minute:
		return int64(t.Minute())
	case Hour:
		return int64(t.Hour())
	case Day:
		return int64(t.Day() - 1)
	case Week:
		return 0
	case Month:
		return int64(t.Month() - 1)
	default:
		return int64(t.Year())
	}
}

func (iv Interval) matches(t time.Time) bool {
	n := iv.number(t) % iv.step()
	return n == 0
}

// Floor returns the latest interval boundary at or before t.
func (iv Interval) Floor(t time.Time) time.Time {
	if iv.Unit == Millisecond {
		step := iv.step()
		ms := t.UnixMilli()
		ms = int64(math.Floor(float64(ms)/float64(step))) * step
		return time.UnixMilli(ms).In(t.Location())
	}
	f := iv.floorUnit(t)
	for i := 0; !iv.matches(f) && i < maxIntervalTicks; i++ {
		f = iv.floorUnit(f.Add(-time.Millisecond))
	}
	return f
}

// Ceil returns the earliest interval boundary at or after t.
func (iv Interval) Ceil(t time.Time) time.Time {
	if iv.Unit == Millisecond {
		step := iv.step()
		ms := t.UnixMilli()
		if t.Sub(time.UnixMilli(ms)) > 0 {
			ms++
		}
		ms = int64(math.Ceil(float64(ms)/float64(step))) * step
		return time.UnixMilli(ms).In(t.Location())
	}
	f := iv.floorUnit(t)
	if f.Before(t) {
		f = iv.offsetUnit(f, 1)
	}
	for i := 0; !iv.matches(f) && i < maxIntervalTicks; i++ {
		f = iv.offsetUnit(f, 1)
	}
	return f
}

// Range returns the boundaries in [start, stop).
func (iv Interval) Range(start, stop time.Time) []time.Time {
	var out []time.Time
	t := iv.Ceil(start)
	for i := 0; t.Before(stop) && i < maxIntervalTicks; i++ {
		if iv.matches(t) {
			out = append(out, t)
		}
		if iv.Unit == Millisecond {
			t = iv.offsetUnit(t, int(iv.step()))
		} else {
			t = iv.offsetUnit(t, 1)
		}
	}
	return out
}

var (
	tickSteps = []float64{
		1e3, 5e3, 15e3, 3e4,
		6e4, 3e5, 9e5, 18e5,
		36e5, 108e5, 216e5, 432e5,
		864e5, 1728e5, 6048e5,
		2592e6, 7776e6, 31536e6,
	}
	tickIntervals = []Interval{
		{Second, 1}, {Second, 5}, {Second, 15}, {Second, 30},
		{Minute, 1}, {Minute, 5}, {Minute, 15}, {Minute, 30},
		{Hour, 1}, {Hour, 3}, {Hour, 6}, {Hour, 12},
		{Day, 1}, {Day, 2}, {Week, 1},
		{Month, 1}, {Month, 3}, {Year, 1},
	}
)

const msPerYear = 31536e6

// TickInterval chooses the calendar interval that yields about count ticks
// across [d0, d1].
func TickInterval(d0, d1 time.Time, count int) Interval {
	if count <= 0 {
		count = DefaultTicks
	}
	lo, hi := d0, d1
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	span := float64(hi.Sub(lo)) / float64(time.Millisecond)
	target := span / float64(count)
	i := sort.Search(len(tickSteps), func(i int) bool { return tickSteps[i] > target })
	switch {
	case i == len(tickSteps):
		_, _, step := linearTickRange(float64(lo.UnixMilli())/msPerYear, float64(hi.UnixMilli())/msPerYear, count)
		return Interval{Unit: Year, Step: int64(math.Max(1, math.Round(step)))}
	case i == 0:
		_, _, step := linearTickRange(float64(lo.UnixMilli()), float64(hi.UnixMilli()), count)
		return Interval{Unit: Millisecond, Step: int64(math.Max(1, math.Round(step)))}
	}
	if target/tickSteps[i-1] < tickSteps[i]/target {
		i--
	}
	return tickIntervals[i]
}
