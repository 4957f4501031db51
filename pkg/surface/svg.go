package surface

import (
	"bytes"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

// animation samples per tween written as SMIL keyframes
const animateSamples = 10

// WriteSVG serializes the tree as it shows at the document's current time.
// Running tweens are written as SMIL animate elements that finish the
// remaining part of the transition.
func (d *Document) WriteSVG(w io.Writer) error {
	var buf bytes.Buffer
	writeElement(&buf, d.root, d.Now())
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// SVG returns WriteSVG output as a string.
func (d *Document) SVG() string {
	var buf bytes.Buffer
	d.WriteSVG(&buf)
	return buf.String()
}

func writeElement(buf *bytes.Buffer, e *Element, now time.Time) {
	buf.WriteByte('<')
	buf.WriteString(e.Tag)
	for _, a := range e.attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.name)
		buf.WriteString(`="`)
		xml.EscapeText(buf, []byte(e.AttrAt(a.name, now)))
		buf.WriteByte('"')
	}
	animations := activeTweens(e, now)
	if len(e.children) == 0 && len(e.text) == 0 && len(animations) == 0 {
		buf.WriteString(`/>`)
		return
	}
	buf.WriteByte('>')
	if len(e.text) > 0 {
		xml.EscapeText(buf, []byte(e.text))
	}
	for _, a := range animations {
		writeAnimation(buf, a.name, a.tw, now)
	}
	for _, c := range e.children {
		writeElement(buf, c, now)
	}
	buf.WriteString(`</`)
	buf.WriteString(e.Tag)
	buf.WriteByte('>')
}

type namedTween struct {
	name string
	tw   *tween
}

func activeTweens(e *Element, now time.Time) []namedTween {
	var out []namedTween
	for name, tw := range e.tweens {
		if now.Before(tw.end()) {
			out = append(out, namedTween{name: name, tw: tw})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func writeAnimation(buf *bytes.Buffer, name string, tw *tween, now time.Time) {
	p0 := tw.progress(now)
	begin := tw.begin.Sub(now)
	if begin < 0 {
		begin = 0
	}
	remaining := tw.end().Sub(now)
	if tw.begin.After(now) {
		remaining = tw.duration
	}
	values := make([]string, 0, animateSamples+1)
	keyTimes := make([]string, 0, animateSamples+1)
	for k := 0; k <= animateSamples; k++ {
		f := float64(k) / animateSamples
		p := p0 + (1-p0)*f
		values = append(values, tw.interp(tw.ease(p)))
		keyTimes = append(keyTimes, formatFloat(f))
	}
	tag := `animate`
	var extra string
	if name == `transform` {
		// only translate transforms can be animated
		for i, v := range values {
			x, y := translation(v)
			values[i] = formatFloat(x) + `,` + formatFloat(y)
		}
		tag = `animateTransform`
		extra = ` type="translate"`
	}
	buf.WriteString(`<` + tag + ` attributeName="`)
	buf.WriteString(name)
	buf.WriteString(`"` + extra + ` values="`)
	xml.EscapeText(buf, []byte(strings.Join(values, `;`)))
	buf.WriteString(`" keyTimes="`)
	buf.WriteString(strings.Join(keyTimes, `;`))
	buf.WriteString(`" begin="`)
	buf.WriteString(seconds(begin))
	buf.WriteString(`" dur="`)
	buf.WriteString(seconds(remaining))
	buf.WriteString(`" fill="freeze"/>`)
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + `s`
}
