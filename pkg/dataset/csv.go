package dataset

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/admpub/log"
	"github.com/admpub/tail"
	"github.com/araddon/dateparse"
)

func init() {
	f := Format{Load: LoadCSV, Save: SaveCSV}
	Register(`.csv`, f)
	Register(`.tsv`, Format{Load: LoadCSV})
	Register(`.txt`, Format{Load: LoadCSV})
}

var errBadLine = errors.New(`expected time and value`)

// LoadCSV reads "time,value" lines. Tabs and semicolons also separate the
// fields. Lines that do not parse are logged and skipped.
func LoadCSV(path string, lastLines int) ([]Point, error) {
	ti, err := tail.TailFile(path, tail.Config{LastLines: lastLines})
	if err != nil {
		return nil, err
	}
	var points []Point
	var i int
	for line := range ti.Lines {
		i++
		text := strings.TrimSpace(line.Text)
		if len(text) == 0 || strings.HasPrefix(text, `#`) {
			continue
		}
		p, err := ParseLine(text)
		if err != nil {
			if i > 1 { // first line may be a header
				log.Warnf(`skip line %d of %s: %v`, i, path, err)
			}
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

// ParseLine parses one "time,value" record.
func ParseLine(text string) (Point, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\t' || r == ';'
	})
	if len(fields) < 2 {
		return Point{}, errBadLine
	}
	t, err := ParseTime(strings.TrimSpace(fields[0]))
	if err != nil {
		return Point{}, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Point{}, err
	}
	return Point{Time: t, Value: v}, nil
}

// ParseTime accepts any layout dateparse knows and Unix timestamps in
// seconds or milliseconds.
func ParseTime(s string) (time.Time, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return unixTime(n), nil
	}
	return dateparse.ParseAny(s)
}

// values above this are taken as milliseconds
const maxUnixSeconds = 1e11

func unixTime(n int64) time.Time {
	if n > maxUnixSeconds || n < -maxUnixSeconds {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

func SaveCSV(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{`time`, `value`}); err != nil {
		return err
	}
	for _, p := range points {
		if err := w.Write([]string{
			p.Time.Format(time.RFC3339Nano),
			strconv.FormatFloat(p.Value, 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
