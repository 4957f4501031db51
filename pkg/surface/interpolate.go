package surface

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRegexp = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// interpolateString returns an interpolator between a and b that tweens the
// numbers embedded in b from their counterparts in a, in order. Text between
// the numbers comes from b.
func interpolateString(a, b string) func(t float64) string {
	an := numberRegexp.FindAllString(a, -1)
	bIdx := numberRegexp.FindAllStringIndex(b, -1)
	if len(bIdx) == 0 {
		return func(t float64) string {
			if t < 1 {
				return a
			}
			return b
		}
	}
	type segment struct {
		static string
		from   float64
		to     float64
		tween  bool
	}
	var segs []segment
	var last int
	for i, loc := range bIdx {
		to, _ := strconv.ParseFloat(b[loc[0]:loc[1]], 64)
		seg := segment{static: b[last:loc[0]], to: to}
		if i < len(an) {
			if from, err := strconv.ParseFloat(an[i], 64); err == nil {
				seg.from = from
				seg.tween = true
			}
		}
		segs = append(segs, seg)
		last = loc[1]
	}
	tail := b[last:]
	return func(t float64) string {
		var sb strings.Builder
		for _, s := range segs {
			sb.WriteString(s.static)
			v := s.to
			if s.tween {
				v = s.from + (s.to-s.from)*t
			}
			sb.WriteString(formatFloat(v))
		}
		sb.WriteString(tail)
		return sb.String()
	}
}
