package axis

import (
	"testing"
	"time"

	"github.com/admpub/barchart/pkg/scale"
	"github.com/admpub/barchart/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(g *surface.Selection) []string {
	var out []string
	for _, n := range g.SelectAll(`.tick text`).Nodes() {
		out = append(out, n.Text())
	}
	return out
}

func tickByLabel(g *surface.Selection, label string) *surface.Element {
	for _, n := range g.SelectAll(`.tick`).Nodes() {
		if n.Find(`text`).Text() == label {
			return n
		}
	}
	return nil
}

func TestLeftAxis(t *testing.T) {
	doc := surface.NewDocument()
	y := scale.NewLinear(100, 0).SetDomain(0, 3000)
	a := New(Linear(y), Left).SetTicks(3).SetTickPadding(8).TickSize(10)
	g := doc.Select(`svg`).Append(`g`).Attr(`class`, `y axis`)

	a.Render(g, nil)
	assert.Equal(t, []string{`0`, `1,000`, `2,000`, `3,000`}, labels(g))
	assert.Equal(t, `M-10,0H0V100H-10`, doc.Find(`path.domain`).Attr(`d`))

	ticks := g.SelectAll(`.tick`).Nodes()
	require.Len(t, ticks, 4)
	assert.Equal(t, `translate(0,100)`, ticks[0].Attr(`transform`))
	text := ticks[0].Find(`text`)
	assert.Equal(t, `-18`, text.Attr(`x`))
	assert.Equal(t, `end`, text.Attr(`text-anchor`))
	assert.Equal(t, `-10`, ticks[0].Find(`line`).Attr(`x2`))

	kept := ticks[1]
	y.SetDomain(0, 2000)
	a.Render(g, nil)
	assert.Equal(t, []string{`0`, `1,000`, `2,000`}, labels(g))
	assert.Same(t, kept, g.SelectAll(`.tick`).Nodes()[1], `ticks are joined by value`)
	assert.Equal(t, `translate(0,50)`, kept.Attr(`transform`))
	assert.Equal(t, 1, doc.SelectAll(`path`).Size())
}

func TestBottomAxisTransition(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	doc := surface.NewDocument(surface.WithClock(func() time.Time { return now }))
	x := scale.NewLinear(0, 400).SetDomain(0, 10)
	a := New(Linear(x), Bottom).SetTicks(5).SetTickPadding(8).TickSize(3)
	g := doc.Select(`svg`).Append(`g`).Attr(`class`, `x axis`)
	a.Render(g, nil)

	first := g.SelectAll(`.tick`).Nodes()
	require.Len(t, first, 6)
	text := first[1].Find(`text`)
	assert.Equal(t, `11`, text.Attr(`y`))
	assert.Equal(t, `.71em`, text.Attr(`dy`))
	assert.Equal(t, `translate(80,0)`, first[1].Attr(`transform`))
	assert.Equal(t, `M0,3V0H400V3`, doc.Find(`path.domain`).Attr(`d`))

	x.SetDomain(0, 20)
	a.Render(g, g.Transition())
	assert.ElementsMatch(t, []string{`0`, `5`, `10`, `15`, `20`}, labels(g))

	// 10 moves from 400 to 200 while 5 fades in at its final place
	ten, five := tickByLabel(g, `10`), tickByLabel(g, `5`)
	require.NotNil(t, ten)
	require.NotNil(t, five)
	assert.Same(t, first[5], ten)
	assert.Equal(t, `translate(400,0)`, ten.AttrAt(`transform`, now))
	assert.Equal(t, `translate(200,0)`, ten.Attr(`transform`))
	assert.Equal(t, `translate(100,0)`, five.AttrAt(`transform`, now))
	assert.Equal(t, `0.000001`, five.AttrAt(`opacity`, now))
	assert.Equal(t, `1`, five.Attr(`opacity`))

	now = now.Add(surface.DefaultDuration)
	assert.Equal(t, `translate(200,0)`, ten.AttrAt(`transform`, now))
	assert.Equal(t, `1`, five.AttrAt(`opacity`, now))
}

func TestTimeAxis(t *testing.T) {
	doc := surface.NewDocument()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	x := scale.NewTime(0, 390).SetDomain(t0, t0.Add(24*time.Hour))
	a := New(Time(x), Bottom).SetTicks(5)
	g := doc.Select(`svg`).Append(`g`)
	a.Render(g, nil)

	ticks := g.SelectAll(`.tick`).Nodes()
	require.Len(t, ticks, 5)
	assert.Equal(t, `translate(97.5,0)`, ticks[1].Attr(`transform`))
	assert.Equal(t, `06 AM`, ticks[1].Find(`text`).Text())
	assert.Equal(t, `Tue 02`, ticks[4].Find(`text`).Text())
}
