package charts

import (
	"fmt"
	"math"

	"demodash/internal/stats"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ScatterPoint is one plotted row. Color is used only when HasColor is set.
type ScatterPoint struct {
	X        float64
	Y        float64
	Region   string
	Color    float64
	HasColor bool
}

// CorrelationHeatmap builds a heatmap of a Pearson correlation matrix with
// coefficients printed in each cell. NaN entries are left blank.
func CorrelationHeatmap(m *stats.CorrelationMatrix) *charts.HeatMap {
	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Correlation matrix",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      m.Columns,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{
				Show:   opts.Bool(true),
				Rotate: 35,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      m.Columns,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#ffffff", "#a50026"},
			},
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Correlation matrix",
			Width:     "900px",
			Height:    "640px",
		}),
	)

	data := make([]opts.HeatMapData, 0, len(m.Columns)*len(m.Columns))
	for i := range m.Columns {
		for j := range m.Columns {
			v := m.Values[j][i]
			if math.IsNaN(v) {
				continue
			}
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{i, j, round2(v)},
			})
		}
	}

	heatmap.SetXAxis(m.Columns).AddSeries("r", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return heatmap
}

// TopRegionsBar builds a horizontal bar chart of regions ordered ascending so
// the highest value renders at the top.
func TopRegionsBar(regions []string, values []float64, title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithGridOpts(opts.Grid{
			ContainLabel: opts.Bool(true),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "640px",
		}),
	)

	barData := make([]opts.BarData, len(values))
	for i, v := range values {
		barData[i] = opts.BarData{Value: round2(v)}
	}

	bar.SetXAxis(regions).AddSeries("life_expectancy_total", barData)
	bar.XYReversal()
	return bar
}

// VariableScatter builds a scatter of two numeric columns with region hover
// names. When points carry a color value a visual map over that third
// dimension is attached.
func VariableScatter(points []ScatterPoint, xName, yName, colorName string) *charts.Scatter {
	title := fmt.Sprintf("%s vs %s", xName, yName)
	scatter := charts.NewScatter()

	globalOpts := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: xName,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: yName,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "640px",
		}),
	}

	withColor := colorName != ""
	if withColor {
		min, max := colorBounds(points)
		globalOpts = append(globalOpts, charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			Text:       []string{colorName, ""},
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}))
	}
	scatter.SetGlobalOptions(globalOpts...)

	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		value := []interface{}{p.X, p.Y}
		if withColor {
			value = append(value, p.Color)
		}
		data = append(data, opts.ScatterData{
			Name:       p.Region,
			Value:      value,
			SymbolSize: 10,
		})
	}

	scatter.AddSeries(yName, data)
	return scatter
}

// colorBounds finds the visual map bounds over the color dimension
func colorBounds(points []ScatterPoint) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, p := range points {
		if !p.HasColor {
			continue
		}
		if p.Color < min {
			min = p.Color
		}
		if p.Color > max {
			max = p.Color
		}
	}
	if min > max {
		return 0, 1
	}
	if min == max {
		return min - 1, max + 1
	}
	return min, max
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
