package surface

import (
	"time"

	"github.com/admpub/barchart/pkg/ease"
)

// DefaultDuration is the duration of a transition that sets none.
const DefaultDuration = 250 * time.Millisecond

type tween struct {
	id       int64
	from     string
	to       string
	begin    time.Time
	duration time.Duration
	ease     ease.Func
	interp   func(float64) string
}

func (tw *tween) end() time.Time {
	return tw.begin.Add(tw.duration)
}

// progress returns the eased progress at now.
func (tw *tween) progress(now time.Time) float64 {
	if now.Before(tw.begin) {
		return 0
	}
	if tw.duration <= 0 {
		return 1
	}
	return float64(now.Sub(tw.begin)) / float64(tw.duration)
}

func (tw *tween) valueAt(now time.Time) string {
	p := tw.progress(now)
	if p >= 1 {
		return tw.to
	}
	if p <= 0 {
		return tw.from
	}
	return tw.interp(tw.ease(p))
}

// Transition animates attribute changes on a selection. Transitions created
// from one another share an id; a transition with a newer id interrupts the
// tweens of older ones on the same element.
type Transition struct {
	sel      *Selection
	id       int64
	start    time.Time
	delay    time.Duration
	duration time.Duration
	ease     ease.Func
}

// Transition starts a transition at the document's current time with the
// default duration and easing.
func (s *Selection) Transition() *Transition {
	return &Transition{
		sel:      s,
		id:       s.doc.nextID(),
		start:    s.doc.Now(),
		duration: DefaultDuration,
		ease:     ease.Default,
	}
}

func (t *Transition) Selection() *Selection { return t.sel }

func (t *Transition) ID() int64 { return t.id }

func (t *Transition) Duration(d time.Duration) *Transition {
	t.duration = d
	return t
}

func (t *Transition) Delay(d time.Duration) *Transition {
	t.delay = d
	return t
}

// Ease sets the easing function; nil keeps the current one.
func (t *Transition) Ease(f ease.Func) *Transition {
	if f != nil {
		t.ease = f
	}
	return t
}

// EaseName resolves name with ease.Get.
func (t *Transition) EaseName(name string) *Transition {
	return t.Ease(ease.Get(name))
}

// For returns a transition over sel with the same id and timing.
func (t *Transition) For(sel *Selection) *Transition {
	c := *t
	c.sel = sel
	return &c
}

func (t *Transition) Select(selector string) *Transition {
	return t.For(t.sel.Select(selector))
}

func (t *Transition) SelectAll(selector string) *Transition {
	return t.For(t.sel.SelectAll(selector))
}

func (t *Transition) Call(fn func(*Transition)) *Transition {
	fn(t)
	return t
}

// Attr tweens an attribute from its current value to value, which follows the
// Selection.Attr conventions. Attributes that are unset or already equal are
// set immediately.
func (t *Transition) Attr(name string, value any) *Transition {
	begin := t.start.Add(t.delay)
	t.sel.each(func(e *Element, i int) {
		to, ok := attrValue(value, i)
		if !ok {
			e.RemoveAttr(name)
			return
		}
		t.interrupt(e, begin)
		from, exists := e.LookupAttr(name)
		if prev, ok := e.tweens[name]; ok {
			from = prev.valueAt(begin)
		}
		if !exists || from == to || t.duration <= 0 {
			e.SetAttr(name, to)
			return
		}
		if e.tweens == nil {
			e.tweens = map[string]*tween{}
		}
		e.tweens[name] = &tween{
			id:       t.id,
			from:     from,
			to:       to,
			begin:    begin,
			duration: t.duration,
			ease:     t.ease,
			interp:   interpolateString(from, to),
		}
		e.store(name, to)
	})
	return t
}

// interrupt freezes tweens of older transitions at their value when this
// one begins.
func (t *Transition) interrupt(e *Element, begin time.Time) {
	for name, tw := range e.tweens {
		if tw.id >= t.id {
			continue
		}
		v := tw.valueAt(begin)
		delete(e.tweens, name)
		e.store(name, v)
	}
}

// Remove detaches the elements when the transition is scheduled. Exiting
// nodes are not faded out.
func (t *Transition) Remove() *Transition {
	t.sel.Remove()
	return t
}
