package surface

import (
	"strconv"
	"strings"
	"time"
)

type attr struct {
	name  string
	value string
}

// Element is a node of the drawing tree. Attribute values are kept as
// strings the way a DOM keeps them; Attr returns the value an element settles
// on once its transitions end.
type Element struct {
	Tag string

	doc       *Document
	parent    *Element
	children  []*Element
	attrs     []attr
	text      string
	index     int
	key       string
	bound     bool
	tweens    map[string]*tween
	listeners map[string]Listener
}

func newElement(doc *Document, tag string) *Element {
	return &Element{Tag: tag, doc: doc, index: -1}
}

func (e *Element) Document() *Document { return e.doc }

func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// Attr returns the final value of an attribute, or "" when unset.
func (e *Element) Attr(name string) string {
	v, _ := e.LookupAttr(name)
	return v
}

func (e *Element) LookupAttr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return ``, false
}

// Float parses a numeric attribute. Unset or non-numeric values return 0.
func (e *Element) Float(name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Attr(name)), 64)
	if err != nil {
		return 0
	}
	return v
}

// Attrs returns the attributes in insertion order.
func (e *Element) Attrs() [][2]string {
	out := make([][2]string, len(e.attrs))
	for i, a := range e.attrs {
		out[i] = [2]string{a.name, a.value}
	}
	return out
}

// SetAttr sets an attribute immediately, cancelling any tween on it.
func (e *Element) SetAttr(name, value string) {
	delete(e.tweens, name)
	e.store(name, value)
}

func (e *Element) store(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			if e.attrs[i].value != value {
				e.attrs[i].value = value
				e.touch()
			}
			return
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: value})
	e.touch()
}

func (e *Element) RemoveAttr(name string) {
	delete(e.tweens, name)
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			e.touch()
			return
		}
	}
}

// AttrAt returns the value an attribute shows at now, following any tween.
func (e *Element) AttrAt(name string, now time.Time) string {
	if tw, ok := e.tweens[name]; ok {
		return tw.valueAt(now)
	}
	return e.Attr(name)
}

// Tweening reports whether any attribute is still animating at now.
func (e *Element) Tweening(now time.Time) bool {
	for _, tw := range e.tweens {
		if now.Before(tw.end()) {
			return true
		}
	}
	return false
}

func (e *Element) ID() string { return e.Attr(`id`) }

func (e *Element) Classes() []string {
	return strings.Fields(e.Attr(`class`))
}

func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// SetClass adds or removes a class name.
func (e *Element) SetClass(name string, on bool) {
	classes := e.Classes()
	out := classes[:0]
	var found bool
	for _, c := range classes {
		if c == name {
			found = true
			if !on {
				continue
			}
		}
		out = append(out, c)
	}
	if on && !found {
		out = append(out, name)
	}
	e.SetAttr(`class`, strings.Join(out, ` `))
}

func (e *Element) Text() string { return e.text }

func (e *Element) SetText(text string) {
	if e.text != text {
		e.text = text
		e.touch()
	}
}

// Index returns the datum index bound by the last join.
func (e *Element) Index() (int, bool) {
	return e.index, e.bound
}

// Key returns the join key bound by the last keyed join.
func (e *Element) Key() string { return e.key }

func (e *Element) bind(index int, key string) {
	e.index = index
	e.key = key
	e.bound = true
}

// Append creates a child element as the last child.
func (e *Element) Append(tag string) *Element {
	child := newElement(e.doc, tag)
	child.parent = e
	e.children = append(e.children, child)
	e.touch()
	return child
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
	p.touch()
}

// Walk visits e and its descendants depth first until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first descendant matching selector.
func (e *Element) Find(selector string) *Element {
	sel := parseSelector(selector)
	var found *Element
	for _, c := range e.children {
		c.Walk(func(n *Element) bool {
			if sel.match(n) {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// FindAll returns every descendant matching selector in document order.
func (e *Element) FindAll(selector string) []*Element {
	sel := parseSelector(selector)
	var found []*Element
	for _, c := range e.children {
		c.Walk(func(n *Element) bool {
			if sel.match(n) {
				found = append(found, n)
			}
			return true
		})
	}
	return found
}

func (e *Element) touch() {
	if e.doc != nil {
		e.doc.version++
	}
}
