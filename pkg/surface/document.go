// Package surface is a small DOM-like drawing layer: an element tree with
// d3-style selections, positional or keyed data joins, attribute transitions
// driven by an injectable clock, synchronous event dispatch and SVG output.
package surface

import (
	"time"
)

const svgNamespace = `http://www.w3.org/2000/svg`

// Document owns an element tree rooted at an svg element.
type Document struct {
	root    *Element
	now     func() time.Time
	version uint64
	lastID  int64
}

type Option func(*Document)

// WithClock sets the time source transitions are scheduled against.
func WithClock(now func() time.Time) Option {
	return func(d *Document) {
		d.now = now
	}
}

// WithID sets the id attribute of the root svg element.
func WithID(id string) Option {
	return func(d *Document) {
		d.root.SetAttr(`id`, id)
	}
}

// WithClass sets the class attribute of the root svg element.
func WithClass(class string) Option {
	return func(d *Document) {
		d.root.SetAttr(`class`, class)
	}
}

func NewDocument(options ...Option) *Document {
	d := &Document{now: time.Now}
	d.root = newElement(d, `svg`)
	d.root.SetAttr(`xmlns`, svgNamespace)
	for _, o := range options {
		o(d)
	}
	return d
}

func (d *Document) Root() *Element { return d.root }

func (d *Document) Now() time.Time { return d.now() }

// Version increases on every mutation of the tree.
func (d *Document) Version() uint64 { return d.version }

// Count returns the number of elements in the tree, root included.
func (d *Document) Count() int {
	var n int
	d.root.Walk(func(*Element) bool {
		n++
		return true
	})
	return n
}

// Find returns the first element matching selector, the root included.
func (d *Document) Find(selector string) *Element {
	if parseSelector(selector).match(d.root) {
		return d.root
	}
	return d.root.Find(selector)
}

// Select returns a selection of the first element matching selector. The
// selection is empty when nothing matches.
func (d *Document) Select(selector string) *Selection {
	s := &Selection{doc: d}
	if e := d.Find(selector); e != nil {
		s.nodes = []*Element{e}
	}
	return s
}

// SelectAll returns every element matching selector, the root included.
func (d *Document) SelectAll(selector string) *Selection {
	s := &Selection{doc: d, parent: d.root}
	if parseSelector(selector).match(d.root) {
		s.nodes = append(s.nodes, d.root)
	}
	s.nodes = append(s.nodes, d.root.FindAll(selector)...)
	return s
}

// Settle drops tweens that have finished by now.
func (d *Document) Settle() {
	now := d.Now()
	d.root.Walk(func(e *Element) bool {
		for name, tw := range e.tweens {
			if !now.Before(tw.end()) {
				delete(e.tweens, name)
			}
		}
		return true
	})
}

func (d *Document) nextID() int64 {
	d.lastID++
	return d.lastID
}
