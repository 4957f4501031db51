package surface

import (
	"fmt"
	"strconv"
)

// KeyFunc returns the join key of datum i. A nil KeyFunc joins by position.
type KeyFunc func(i int) string

// Selection is an ordered group of elements sharing a parent. After Data the
// node list may hold nil slots for data that has no element yet; Enter
// exposes those slots.
type Selection struct {
	doc    *Document
	parent *Element
	nodes  []*Element

	entering []int
	exiting  []*Element
	keys     KeyFunc
	update   *Selection // set on enter selections
}

func (s *Selection) Document() *Document { return s.doc }

// Nodes returns the non-nil elements in order.
func (s *Selection) Nodes() []*Element {
	out := make([]*Element, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Node returns the first element, nil for an empty selection.
func (s *Selection) Node() *Element {
	for _, n := range s.nodes {
		if n != nil {
			return n
		}
	}
	return nil
}

func (s *Selection) Size() int { return len(s.Nodes()) }

func (s *Selection) Empty() bool { return s.Node() == nil }

// Select picks the first matching descendant of each element. The child
// inherits the parent's bound datum.
func (s *Selection) Select(selector string) *Selection {
	out := &Selection{doc: s.doc, parent: s.parent}
	for _, n := range s.nodes {
		if n == nil {
			continue
		}
		if c := n.Find(selector); c != nil {
			if n.bound {
				c.bind(n.index, n.key)
			}
			out.nodes = append(out.nodes, c)
		}
	}
	return out
}

// SelectAll picks every matching descendant. The result is grouped under the
// first element of s, which becomes the parent for a later Data join.
func (s *Selection) SelectAll(selector string) *Selection {
	out := &Selection{doc: s.doc, parent: s.Node()}
	for _, n := range s.nodes {
		if n == nil {
			continue
		}
		out.nodes = append(out.nodes, n.FindAll(selector)...)
	}
	return out
}

// Data joins n data items against the elements of s. Matching is by index
// when key is nil and by key otherwise. The returned update selection has one
// slot per datum; Enter and Exit expose the unmatched sides.
func (s *Selection) Data(n int, key KeyFunc) *Selection {
	if n < 0 {
		n = 0
	}
	existing := s.Nodes()
	u := &Selection{doc: s.doc, parent: s.parent, nodes: make([]*Element, n)}
	if key == nil {
		for i := 0; i < n; i++ {
			if i < len(existing) {
				existing[i].bind(i, ``)
				u.nodes[i] = existing[i]
			} else {
				u.entering = append(u.entering, i)
			}
		}
		if len(existing) > n {
			u.exiting = append(u.exiting, existing[n:]...)
		}
		return u
	}
	byKey := make(map[string]*Element, len(existing))
	for _, e := range existing {
		if _, dup := byKey[e.key]; dup || !e.bound {
			u.exiting = append(u.exiting, e)
			continue
		}
		byKey[e.key] = e
	}
	for i := 0; i < n; i++ {
		k := key(i)
		if e, ok := byKey[k]; ok {
			delete(byKey, k)
			e.bind(i, k)
			u.nodes[i] = e
			continue
		}
		u.entering = append(u.entering, i)
	}
	for _, e := range existing {
		if byKey[e.key] == e {
			u.exiting = append(u.exiting, e)
		}
	}
	u.keys = key
	return u
}

// Enter returns the placeholders for data without an element. Appending to
// it fills the matching slots of the update selection.
func (s *Selection) Enter() *Selection {
	return &Selection{doc: s.doc, parent: s.parent, update: s, entering: s.entering}
}

// Exit returns the elements left without a datum.
func (s *Selection) Exit() *Selection {
	return &Selection{doc: s.doc, parent: s.parent, nodes: append([]*Element(nil), s.exiting...)}
}

// Append adds a child to each element, or for an enter selection creates one
// element per placeholder under the group parent.
func (s *Selection) Append(tag string) *Selection {
	out := &Selection{doc: s.doc, parent: s.parent}
	if s.update != nil {
		if s.parent == nil {
			return out
		}
		for _, i := range s.entering {
			e := s.parent.Append(tag)
			var k string
			if s.update.keys != nil {
				k = s.update.keys(i)
			}
			e.bind(i, k)
			s.update.nodes[i] = e
			out.nodes = append(out.nodes, e)
		}
		return out
	}
	for _, n := range s.nodes {
		if n == nil {
			continue
		}
		c := n.Append(tag)
		if n.bound {
			c.bind(n.index, n.key)
		}
		out.nodes = append(out.nodes, c)
	}
	return out
}

// Attr sets an attribute on every element. value may be a constant, nil to
// remove, or a function of the bound datum index:
// func(int) float64, func(int) string or func(int) any.
func (s *Selection) Attr(name string, value any) *Selection {
	s.each(func(e *Element, i int) {
		v, ok := attrValue(value, i)
		if !ok {
			e.RemoveAttr(name)
			return
		}
		e.SetAttr(name, v)
	})
	return s
}

// Class adds (on) or removes a class on every element.
func (s *Selection) Class(name string, on bool) *Selection {
	s.each(func(e *Element, _ int) {
		e.SetClass(name, on)
	})
	return s
}

// Text sets the text content; value follows the Attr conventions.
func (s *Selection) Text(value any) *Selection {
	s.each(func(e *Element, i int) {
		v, _ := attrValue(value, i)
		e.SetText(v)
	})
	return s
}

// Remove detaches every element from the tree.
func (s *Selection) Remove() *Selection {
	for _, n := range s.nodes {
		if n != nil {
			n.Remove()
		}
	}
	return s
}

// Each calls fn with every element and its datum index.
func (s *Selection) Each(fn func(e *Element, i int)) *Selection {
	s.each(fn)
	return s
}

// Call invokes fn with the selection, for chaining helpers such as axes.
func (s *Selection) Call(fn func(*Selection)) *Selection {
	fn(s)
	return s
}

// On registers a listener per element; nil removes it.
func (s *Selection) On(typ string, fn Listener) *Selection {
	s.each(func(e *Element, _ int) {
		e.On(typ, fn)
	})
	return s
}

func (s *Selection) each(fn func(e *Element, i int)) {
	var pos int
	for _, n := range s.nodes {
		if n == nil {
			continue
		}
		i := pos
		if n.bound {
			i = n.index
		}
		fn(n, i)
		pos++
	}
}

func attrValue(value any, i int) (string, bool) {
	switch v := value.(type) {
	case nil:
		return ``, false
	case func(int) float64:
		return formatFloat(v(i)), true
	case func(int) string:
		return v(i), true
	case func(int) any:
		return attrValue(v(i), i)
	case string:
		return v, true
	case float64:
		return formatFloat(v), true
	case float32:
		return formatFloat(float64(v)), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
