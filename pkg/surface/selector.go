package surface

import "strings"

// compound is one simple selector: tag, #id and any number of .class parts.
type compound struct {
	tag     string
	id      string
	classes []string
}

// selector is a descendant chain of compounds ("g.x.axis .tick").
type selector []compound

func parseSelector(s string) selector {
	var sel selector
	for _, part := range strings.Fields(s) {
		sel = append(sel, parseCompound(part))
	}
	return sel
}

func parseCompound(s string) compound {
	var c compound
	for len(s) > 0 {
		end := strings.IndexAny(s[1:], `.#`) + 1
		if end == 0 {
			end = len(s)
		}
		part := s[:end]
		switch part[0] {
		case '.':
			c.classes = append(c.classes, part[1:])
		case '#':
			c.id = part[1:]
		default:
			c.tag = part
		}
		s = s[end:]
	}
	return c
}

func (c compound) match(e *Element) bool {
	if c.tag != `` && c.tag != `*` && c.tag != e.Tag {
		return false
	}
	if c.id != `` && c.id != e.ID() {
		return false
	}
	for _, class := range c.classes {
		if !e.HasClass(class) {
			return false
		}
	}
	return true
}

func (s selector) match(e *Element) bool {
	if len(s) == 0 {
		return false
	}
	if !s[len(s)-1].match(e) {
		return false
	}
	i := len(s) - 2
	for p := e.parent; p != nil && i >= 0; p = p.parent {
		if s[i].match(p) {
			i--
		}
	}
	return i < 0
}
