package barchart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	c.Width = 1
	c.Margin.Left = 1
	d := DefaultConfig()
	assert.NotEqual(t, c.Margin, d.Margin)
	assert.Equal(t, 450.0, d.Width)
	assert.Equal(t, Margin{Top: 15, Right: 0, Bottom: 35, Left: 60}, d.Margin)
	assert.True(t, d.Nice)
	assert.Equal(t, 250*time.Millisecond, d.TransitionDuration())
	assert.False(t, d.Interactive())
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`{
		// json5 allows comments
		width: 220,
		height: null,
		margin: {left: 40},
		barPadding: 15,
		nice: false,
		ease: 'bounce-out',
	}`))
	require.NoError(t, err)
	assert.Equal(t, 220.0, c.Width)
	assert.Equal(t, 130.0, c.Height)
	assert.Equal(t, Margin{Top: 15, Right: 0, Bottom: 35, Left: 40}, c.Margin)
	assert.Equal(t, 15.0, c.BarPadding)
	assert.Equal(t, 10.0, c.TickSize)
	assert.Equal(t, `#chart`, c.Target)
	assert.False(t, c.Nice)
	assert.Equal(t, `bounce-out`, c.Ease)

	_, err = ParseConfig([]byte(`{width: `))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), `chart.json5`)
	require.NoError(t, os.WriteFile(path, []byte(`{target: '#small', tickSize: 3}`), 0644))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, `#small`, c.Target)
	assert.Equal(t, 3.0, c.TickSize)
	assert.Equal(t, 450.0, c.Width)

	_, err = LoadConfig(filepath.Join(t.TempDir(), `missing.json5`))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	loaded := DefaultConfig()
	loaded.Width = 300
	doc, _ := newDocument()
	chart, err := New(doc,
		WithConfig(loaded),
		WithTickSize(3),
		WithAxisPadding(2),
		WithDuration(time.Second),
		OnMouseOut(func() {}),
	)
	require.NoError(t, err)
	c := chart.Config()
	assert.Equal(t, 300.0, c.Width)
	assert.Equal(t, 3.0, c.TickSize)
	assert.Equal(t, 2.0, c.AxisPadding)
	assert.Equal(t, 1000, c.Duration)
	assert.True(t, c.Interactive())
}

func TestOptionsReplace(t *testing.T) {
	doc, _ := newDocument()
	chart, err := New(doc, WithMargin(Margin{Left: 40}))
	require.NoError(t, err)
	assert.Equal(t, Margin{Left: 40}, chart.Config().Margin)
	w, h := chart.Dimensions()
	assert.Equal(t, 410.0, w)
	assert.Equal(t, 130.0, h)

	// a partial config zeroes the height
	doc, _ = newDocument()
	_, err = New(doc, WithConfig(Config{Target: `#chart`, Width: 300}))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	cfg := DefaultConfig()
	cfg.Width = 300
	doc, _ = newDocument()
	chart, err = New(doc, WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Margin, chart.Config().Margin)
	assert.Equal(t, 130.0, chart.Config().Height)
}
