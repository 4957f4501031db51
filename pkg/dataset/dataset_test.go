package dataset

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/admpub/pp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	points := Generate(24, now, rand.New(rand.NewSource(1)))
	require.Len(t, points, 24)
	assert.True(t, points[23].Time.Equal(now))
	assert.True(t, points[0].Time.Equal(now.Add(-23*time.Hour)))
	for i, p := range points {
		assert.GreaterOrEqual(t, p.Value, 250.0)
		assert.Less(t, p.Value, 3000.0)
		if i > 0 {
			assert.Equal(t, time.Hour, p.Time.Sub(points[i-1].Time))
		}
	}
	assert.Empty(t, Generate(0, now, nil))
}

func assertSamePoints(t *testing.T, want, got []Point) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Time.Equal(got[i].Time), `time %d: %v != %v`, i, want[i].Time, got[i].Time)
		assert.Equal(t, want[i].Value, got[i].Value)
	}
}

func TestSaveLoad(t *testing.T) {
	points := Generate(10, now, rand.New(rand.NewSource(2)))
	dir := t.TempDir()
	for _, ext := range []string{`.csv`, `.json`, `.parquet`} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, `points`+ext)
			require.NoError(t, Save(path, points))
			got, err := Load(path, 0)
			require.NoError(t, err)
			assertSamePoints(t, points, got)

			got, err = Load(path, 3)
			require.NoError(t, err)
			assertSamePoints(t, points[7:], got)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), `points.txt`)
	content := "time\tvalue\n" +
		"2024-03-01T01:00:00Z\t20\n" +
		"# comment\n" +
		"1709251200;10\n" +
		"broken line\n" +
		"1709258400000,30.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	points, err := Load(path, 0)
	require.NoError(t, err)
	pp.Println(points)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{10, 20, 30.5}, []float64{points[0].Value, points[1].Value, points[2].Value})
	assert.True(t, points[0].Time.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, points[2].Time.Equal(time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)))
}

func TestLoadJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), `points.json5`)
	content := `[
		// unordered on purpose
		{time: '2024-03-01T01:00:00Z', value: '7'},
		{time: 1709251200, value: 3},
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	points, err := Load(path, 0)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 3.0, points[0].Value)
	assert.Equal(t, 7.0, points[1].Value)
	assert.Equal(t, time.Hour, points[1].Time.Sub(points[0].Time))
}

func TestUnsupported(t *testing.T) {
	_, err := Load(`points.xlsx`, 0)
	assert.True(t, errors.Is(err, ErrUnsupported))
	err = Save(filepath.Join(t.TempDir(), `points.tsv`), nil)
	assert.True(t, errors.Is(err, ErrUnsupported))
}
