package chartutil

import (
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// https://github.com/go-echarts/examples

func Title(title, subtitle string, options ...func(*opts.Title)) charts.GlobalOpts {
	option := opts.Title{
		Title:    title,
		Subtitle: subtitle,
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithTitleOpts(option)
}

// Initialization sizes the chart in pixels. A zero size keeps the echarts
// default.
func Initialization(width, height float64, options ...func(*opts.Initialization)) charts.GlobalOpts {
	option := opts.Initialization{Theme: types.ThemeWesteros}
	if width > 0 {
		option.Width = px(width)
	}
	if height > 0 {
		option.Height = px(height)
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithInitializationOpts(option)
}

func Tooltip() charts.GlobalOpts {
	return charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: `axis`})
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + `px`
}
