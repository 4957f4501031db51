// Package dataset generates, loads and saves chart points.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/admpub/barchart/pkg/barchart"
)

type Point = barchart.Point

// Format reads and writes one file type. LastLines > 0 keeps only the last
// entries of the file.
type Format struct {
	Load func(path string, lastLines int) ([]Point, error)
	Save func(path string, points []Point) error
}

var formats = map[string]Format{}

// Register binds a format to a file extension such as ".csv".
func Register(ext string, format Format) {
	formats[strings.ToLower(ext)] = format
}

var ErrUnsupported = errors.New(`unsupported dataset format`)

func lookup(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formats[ext]
	if !ok {
		return f, fmt.Errorf(`%w: %q`, ErrUnsupported, ext)
	}
	return f, nil
}

// Load reads the points of path, ordered by time.
func Load(path string, lastLines int) ([]Point, error) {
	f, err := lookup(path)
	if err != nil {
		return nil, err
	}
	if f.Load == nil {
		return nil, fmt.Errorf(`%w: %s cannot be read`, ErrUnsupported, filepath.Ext(path))
	}
	points, err := f.Load(path, lastLines)
	if err != nil {
		return nil, fmt.Errorf(`load %s: %w`, path, err)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points, nil
}

func Save(path string, points []Point) error {
	f, err := lookup(path)
	if err != nil {
		return err
	}
	if f.Save == nil {
		return fmt.Errorf(`%w: %s cannot be written`, ErrUnsupported, filepath.Ext(path))
	}
	return f.Save(path, points)
}

func last[T any](rows []T, n int) []T {
	if n > 0 && len(rows) > n {
		return rows[len(rows)-n:]
	}
	return rows
}
