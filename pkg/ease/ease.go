// Package ease provides the named easing curves used by surface transitions.
//
// Names follow the "type-mode" convention: "cubic", "cubic-in-out",
// "bounce-out", "elastic-in". A missing mode means "in".
package ease

import (
	"math"
	"strings"

	"github.com/admpub/log"
)

// Func maps normalized time t in [0,1] to eased progress.
type Func func(t float64) float64

// DefaultName is the easing applied to transitions that set none.
const DefaultName = `cubic-in-out`

// Default is the transition easing, cubic-in-out.
var Default = InOut(Cubic)

type factory func(params ...float64) Func

var types = map[string]factory{
	`linear`: func(...float64) Func { return Linear },
	`poly`: func(params ...float64) Func {
		e := 3.0
		if len(params) > 0 {
			e = params[0]
		}
		return Poly(e)
	},
	`quad`:  func(...float64) Func { return Quad },
	`cubic`: func(...float64) Func { return Cubic },
	`sin`:   func(...float64) Func { return Sin },
	`exp`:   func(...float64) Func { return Exp },
	`circle`: func(...float64) Func {
		return Circle
	},
	`elastic`: func(params ...float64) Func {
		a, p := 1.0, 0.45
		if len(params) > 0 {
			a = params[0]
		}
		if len(params) > 1 {
			p = params[1]
		}
		return Elastic(a, p)
	},
	`back`: func(params ...float64) Func {
		s := 1.70158
		if len(params) > 0 {
			s = params[0]
		}
		return Back(s)
	},
	`bounce`: func(...float64) Func { return Bounce },
}

var modes = map[string]func(Func) Func{
	`in`:     func(f Func) Func { return f },
	`out`:    Out,
	`in-out`: InOut,
	`out-in`: func(f Func) Func { return InOut(Out(f)) },
}

// Get resolves a name such as "cubic-in-out" to a clamped easing function.
// Unknown types fall back to linear and unknown modes to "in".
func Get(name string, params ...float64) Func {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		return Default
	}
	typ, mode := name, `in`
	if i := strings.IndexByte(name, '-'); i >= 0 {
		typ, mode = name[:i], name[i+1:]
	}
	mk, ok := types[typ]
	if !ok {
		log.Warnf("ease: unknown easing type %q, using linear", typ)
		mk = types[`linear`]
	}
	wrap, ok := modes[mode]
	if !ok {
		log.Warnf("ease: unknown easing mode %q, using in", mode)
		wrap = modes[`in`]
	}
	return Clamp(wrap(mk(params...)))
}

// Exists reports whether name resolves without falling back.
func Exists(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		return true
	}
	typ, mode := name, `in`
	if i := strings.IndexByte(name, '-'); i >= 0 {
		typ, mode = name[:i], name[i+1:]
	}
	_, okType := types[typ]
	_, okMode := modes[mode]
	return okType && okMode
}

// Clamp pins the input to [0,1] so 0 and 1 map exactly to the endpoints.
func Clamp(f Func) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return f(t)
	}
}

func Out(f Func) Func {
	return func(t float64) float64 { return 1 - f(1-t) }
}

func InOut(f Func) Func {
	return func(t float64) float64 {
		if t < .5 {
			return f(2*t) / 2
		}
		return 1 - f(2-2*t)/2
	}
}

func Linear(t float64) float64 { return t }

func Poly(e float64) Func {
	return func(t float64) float64 { return math.Pow(t, e) }
}

func Quad(t float64) float64 { return t * t }

func Cubic(t float64) float64 { return t * t * t }

func Sin(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

func Exp(t float64) float64 { return math.Pow(2, 10*(t-1)) }

func Circle(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

func Elastic(a, p float64) Func {
	var s float64
	if a < 1 {
		a = 1
		s = p / 4
	} else {
		s = p / (2 * math.Pi) * math.Asin(1/a)
	}
	return func(t float64) float64 {
		return 1 + a*math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/p)
	}
}

func Back(s float64) Func {
	return func(t float64) float64 { return t * t * ((s+1)*t - s) }
}

func Bounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + .75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + .9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + .984375
	}
}
