package report

import (
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// saveHTML draws the Figure as an interactive go-echarts line chart
func saveHTML(f Figure, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: f.Title,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: f.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: f.YLabel}),
	)

	steps := f.Steps()
	xAxis := make([]string, steps)
	ref := make([]opts.LineData, steps)
	for i := range xAxis {
		xAxis[i] = strconv.Itoa(i)
		ref[i] = opts.LineData{Value: f.Reference}
	}

	line.SetXAxis(xAxis).AddSeries(f.ReferenceLabel, ref)
	for _, s := range f.Series {
		items := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	return WriteFile(path, page.Render)
}
