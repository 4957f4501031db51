package chartutil

import (
	"io"

	"github.com/admpub/barchart/pkg/barchart"
	"github.com/admpub/barchart/pkg/scale"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewBar builds an echarts bar chart of points with one category per point,
// labelled the way the time axis labels ticks. It renders to w when w is not
// nil.
func NewBar(w io.Writer, options []charts.GlobalOpts, series string, points []barchart.Point, seriesOptions ...charts.SeriesOpts) (*charts.Bar, error) {
	bar := charts.NewBar()
	options = append([]charts.GlobalOpts{Initialization(0, 0)}, options...)
	bar.SetGlobalOptions(options...)

	bar.SetXAxis(Labels(points))
	bar.AddSeries(series, BarDatas(points), seriesOptions...)

	if w != nil {
		if err := bar.Render(w); err != nil {
			return bar, err
		}
	}
	return bar, nil
}

func Labels(points []barchart.Point) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = scale.FormatTime(p.Time)
	}
	return labels
}

func BarDatas(points []barchart.Point, options ...func(*opts.BarData)) []opts.BarData {
	datas := make([]opts.BarData, len(points))
	for i, p := range points {
		datas[i] = opts.BarData{
			Name:  p.Time.Format(`2006-01-02 15:04`),
			Value: p.Value,
		}
		for _, o := range options {
			o(&datas[i])
		}
	}
	return datas
}
