package surface

import (
	"strings"
	"testing"
	"time"

	"github.com/admpub/barchart/pkg/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDocument() (*Document, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewDocument(WithID(`chart`), WithClock(c.now)), c
}

func TestSelectors(t *testing.T) {
	doc, _ := newTestDocument()
	g := doc.Select(`#chart`).Append(`g`)
	g.Append(`g`).Class(`x`, true).Class(`axis`, true)
	g.Append(`g`).Attr(`class`, `y axis`)

	assert.Equal(t, doc.Root(), doc.Find(`svg#chart`))
	assert.Equal(t, 1, doc.SelectAll(`.x.axis`).Size())
	assert.Equal(t, 2, doc.SelectAll(`g.axis`).Size())
	assert.Equal(t, 3, doc.SelectAll(`g`).Size())
	assert.Equal(t, 2, doc.SelectAll(`svg g .axis`).Size())
	assert.True(t, doc.Select(`#missing`).Empty())
	assert.Equal(t, `y axis`, doc.Find(`.y`).Attr(`class`))
}

func TestDataJoinPositional(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Select(`svg`)

	values := []float64{10, 20, 30}
	bars := root.SelectAll(`.bar`).Data(len(values), nil)
	bars.Enter().Append(`rect`).Attr(`class`, `bar`)
	bars.Attr(`height`, func(i int) float64 { return values[i] })
	bars.Exit().Remove()

	require.Equal(t, 3, doc.SelectAll(`rect.bar`).Size())
	assert.Equal(t, `30`, doc.SelectAll(`rect.bar`).Nodes()[2].Attr(`height`))

	first := doc.SelectAll(`rect.bar`).Nodes()[0]
	values = []float64{5, 6}
	bars = root.SelectAll(`.bar`).Data(len(values), nil)
	assert.Equal(t, 0, bars.Enter().Append(`rect`).Size())
	bars.Attr(`height`, func(i int) float64 { return values[i] })
	assert.Equal(t, 1, bars.Exit().Size())
	bars.Exit().Remove()

	nodes := doc.SelectAll(`rect.bar`).Nodes()
	require.Len(t, nodes, 2)
	assert.Same(t, first, nodes[0])
	assert.Equal(t, `5`, nodes[0].Attr(`height`))
	i, ok := nodes[1].Index()
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestDataJoinKeyed(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Select(`svg`)
	keys := []string{`a`, `b`, `c`}
	join := func() *Selection {
		s := root.SelectAll(`rect`).Data(len(keys), func(i int) string { return keys[i] })
		s.Enter().Append(`rect`)
		s.Attr(`id`, func(i int) string { return keys[i] })
		s.Exit().Remove()
		return s
	}
	join()
	b := doc.Find(`#b`)
	keys = []string{`b`, `d`}
	s := join()
	assert.Same(t, b, s.Nodes()[0])
	assert.Nil(t, doc.Find(`#a`))
	assert.NotNil(t, doc.Find(`#d`))
	assert.Equal(t, 2, doc.SelectAll(`rect`).Size())
}

func TestTransition(t *testing.T) {
	doc, c := newTestDocument()
	r := doc.Select(`svg`).Append(`rect`).Attr(`y`, 0).Attr(`height`, 10)
	r.Transition().Ease(ease.Linear).Duration(100*time.Millisecond).
		Attr(`y`, 50).
		Attr(`width`, 4)

	e := r.Node()
	assert.Equal(t, `50`, e.Attr(`y`))
	assert.Equal(t, `4`, e.Attr(`width`), `unset attributes jump to the target`)
	assert.Equal(t, `0`, e.AttrAt(`y`, c.now()))
	c.advance(50 * time.Millisecond)
	assert.Equal(t, `25`, e.AttrAt(`y`, c.now()))
	assert.True(t, e.Tweening(c.now()))
	assert.Contains(t, doc.SVG(), `<animate attributeName="y"`)

	// a newer transition interrupts at the current value
	r.Transition().Ease(ease.Linear).Duration(100*time.Millisecond).Attr(`y`, 75)
	assert.Equal(t, `25`, e.AttrAt(`y`, c.now()))
	c.advance(100 * time.Millisecond)
	assert.Equal(t, `75`, e.AttrAt(`y`, c.now()))
	assert.False(t, e.Tweening(c.now()))
	doc.Settle()
	assert.NotContains(t, doc.SVG(), `<animate`)
}

func TestTransitionInterruptsOtherAttributes(t *testing.T) {
	doc, c := newTestDocument()
	r := doc.Select(`svg`).Append(`rect`).Attr(`x`, 0).Attr(`y`, 0)
	r.Transition().Ease(ease.Linear).Duration(100 * time.Millisecond).Attr(`x`, 100)
	c.advance(40 * time.Millisecond)
	r.Transition().Attr(`y`, 10)
	assert.Equal(t, `40`, r.Node().Attr(`x`))
	c.advance(time.Second)
	assert.Equal(t, `40`, r.Node().AttrAt(`x`, c.now()))
}

func TestInterpolateString(t *testing.T) {
	f := interpolateString(`translate(0, 10)`, `translate(100, 20)`)
	assert.Equal(t, `translate(50, 15)`, f(0.5))
	assert.Equal(t, `translate(100, 20)`, f(1))
	g := interpolateString(`none`, `1.5`)
	assert.Equal(t, `1.5`, g(0.3))
}

func TestAnimateTransform(t *testing.T) {
	doc, _ := newTestDocument()
	g := doc.Select(`svg`).Append(`g`).Attr(`transform`, `translate(0,0)`)
	g.Transition().Attr(`transform`, `translate(10,0)`)
	out := doc.SVG()
	assert.Contains(t, out, `<animateTransform attributeName="transform" type="translate"`)
	assert.Contains(t, out, `dur="0.25s"`)
}

func TestEvents(t *testing.T) {
	doc, _ := newTestDocument()
	g := doc.Select(`svg`).Append(`g`).Attr(`transform`, `translate(60, 15)`)
	rect := g.Append(`rect`).Attr(`x`, 10).Attr(`y`, 0).Attr(`width`, 5).Attr(`height`, 20)

	var moves, leaves int
	var px, py float64
	doc.Root().On(`mousemove`, func(ev Event, _ *Element) {
		moves++
		px, py = Pointer(ev, g.Node())
	})
	doc.Root().On(`mouseleave`, func(Event, *Element) { leaves++ })

	target := doc.HitTest(72, 20)
	assert.Same(t, rect.Node(), target)
	assert.Equal(t, 1, doc.Dispatch(target, Event{Type: `mousemove`, X: 72, Y: 20}))
	assert.Equal(t, 12.0, px)
	assert.Equal(t, 5.0, py)

	// mouseleave does not bubble from a child
	assert.Equal(t, 0, doc.Dispatch(target, Event{Type: `mouseleave`}))
	assert.Equal(t, 1, doc.Dispatch(nil, Event{Type: `mouseleave`}))
	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, leaves)
}

func TestWriteSVG(t *testing.T) {
	doc, _ := newTestDocument()
	doc.Root().SetAttr(`width`, `450`)
	doc.Select(`svg`).Append(`text`).Text(`a < b`)
	out := doc.SVG()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" id="chart" width="450">`))
	assert.Contains(t, out, `<text>a &lt; b</text>`)
	v := doc.Version()
	doc.Root().SetAttr(`width`, `450`)
	assert.Equal(t, v, doc.Version(), `setting an equal value is not a mutation`)
	assert.Equal(t, 2, doc.Count())
}
