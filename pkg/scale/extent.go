package scale

import (
	"math"
	"time"
)

// Extent returns the minimum and maximum of value over data, skipping NaN.
// ok is false when nothing was comparable.
func Extent[T any](data []T, value func(T) float64) (lo, hi float64, ok bool) {
	for _, d := range data {
		v := value(d)
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}

// TimeExtent returns the earliest and latest of value over data.
func TimeExtent[T any](data []T, value func(T) time.Time) (lo, hi time.Time, ok bool) {
	for _, d := range data {
		v := value(d)
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v.Before(lo) {
			lo = v
		}
		if v.After(hi) {
			hi = v
		}
	}
	return
}
