package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/admpub/json5"
	"github.com/webx-top/com"
)

func init() {
	f := Format{Load: LoadJSON, Save: SaveJSON}
	Register(`.json`, f)
	Register(`.json5`, f)
}

// LoadJSON reads an array of {time, value} objects. Times may be strings in
// any layout ParseTime accepts or Unix timestamps; values may be numbers or
// numeric strings.
func LoadJSON(path string, lastLines int) ([]Point, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := json5.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	rows = last(rows, lastLines)
	points := make([]Point, 0, len(rows))
	for i, row := range rows {
		t, err := rowTime(row[`time`])
		if err != nil {
			return nil, fmt.Errorf(`row %d: %w`, i, err)
		}
		points = append(points, Point{Time: t, Value: com.Float64(row[`value`])})
	}
	return points, nil
}

func rowTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, errBadLine
	case float64:
		return unixTime(int64(t)), nil
	default:
		return ParseTime(com.String(t))
	}
}

func SaveJSON(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent(``, `  `)
	return enc.Encode(points)
}
