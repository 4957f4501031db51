package dataset

import (
	"math"
	"math/rand"
	"time"
)

// Generate returns n hourly points ending at now, oldest first, with values
// between 250 and 3000.
func Generate(n int, now time.Time, rnd *rand.Rand) []Point {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(now.UnixNano()))
	}
	points := make([]Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		points = append(points, Point{
			Time:  now.Add(-time.Duration(i) * time.Hour),
			Value: math.Max(250, math.Floor(rnd.Float64()*3000)),
		})
	}
	return points
}
