package surface

import (
	"regexp"
	"strconv"
)

// Event is a pointer event in root (svg) coordinates.
type Event struct {
	Type   string
	X, Y   float64
	Target *Element
}

// Listener handles an event delivered to the element it is registered on.
type Listener func(ev Event, current *Element)

// events that are delivered to the target only
var nonBubbling = map[string]bool{
	`mouseenter`: true,
	`mouseleave`: true,
}

// On registers the listener for typ, replacing any previous one. A nil
// listener removes it.
func (e *Element) On(typ string, fn Listener) {
	if fn == nil {
		delete(e.listeners, typ)
		return
	}
	if e.listeners == nil {
		e.listeners = map[string]Listener{}
	}
	e.listeners[typ] = fn
}

// Dispatch delivers ev to target and, for bubbling types, to its ancestors.
// Listeners run synchronously. It returns the number of listeners invoked.
func (d *Document) Dispatch(target *Element, ev Event) int {
	if target == nil {
		target = d.root
	}
	ev.Target = target
	var n int
	for e := target; e != nil; e = e.parent {
		if fn, ok := e.listeners[ev.Type]; ok {
			fn(ev, e)
			n++
		}
		if nonBubbling[ev.Type] {
			break
		}
	}
	return n
}

// HitTest returns the deepest rect whose box contains the root point (x, y),
// or the root when none does.
func (d *Document) HitTest(x, y float64) *Element {
	hit := d.root
	d.root.Walk(func(e *Element) bool {
		if e.Tag != `rect` {
			return true
		}
		ox, oy := Offset(e)
		left, top := ox+e.Float(`x`), oy+e.Float(`y`)
		if x >= left && x <= left+e.Float(`width`) && y >= top && y <= top+e.Float(`height`) {
			hit = e
		}
		return true
	})
	return hit
}

// Pointer returns the event position relative to el's coordinate system.
func Pointer(ev Event, el *Element) (float64, float64) {
	ox, oy := Offset(el)
	return ev.X - ox, ev.Y - oy
}

var translateRegexp = regexp.MustCompile(`translate\(\s*([-+0-9.eE]+)(?:[\s,]+([-+0-9.eE]+))?\s*\)`)

// Offset sums the translate transforms of el and its ancestors.
func Offset(el *Element) (x, y float64) {
	for e := el; e != nil; e = e.parent {
		tx, ty := translation(e.Attr(`transform`))
		x += tx
		y += ty
	}
	return
}

func translation(transform string) (float64, float64) {
	m := translateRegexp.FindStringSubmatch(transform)
	if m == nil {
		return 0, 0
	}
	x, _ := strconv.ParseFloat(m[1], 64)
	var y float64
	if len(m[2]) > 0 {
		y, _ = strconv.ParseFloat(m[2], 64)
	}
	return x, y
}
