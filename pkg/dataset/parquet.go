package dataset

import (
	"time"

	"github.com/parquet-go/parquet-go"
)

func init() {
	Register(`.parquet`, Format{Load: LoadParquet, Save: SaveParquet})
}

type parquetRow struct {
	Timestamp int64   `parquet:"t"` // Unix milliseconds
	Value     float64 `parquet:"v"`
}

func LoadParquet(path string, lastLines int) ([]Point, error) {
	rows, err := parquet.ReadFile[parquetRow](path)
	if err != nil {
		return nil, err
	}
	rows = last(rows, lastLines)
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Time: time.UnixMilli(r.Timestamp), Value: r.Value}
	}
	return points, nil
}

func SaveParquet(path string, points []Point) error {
	rows := make([]parquetRow, len(points))
	for i, p := range points {
		rows[i] = parquetRow{Timestamp: p.Time.UnixMilli(), Value: p.Value}
	}
	return parquet.WriteFile(path, rows)
}
