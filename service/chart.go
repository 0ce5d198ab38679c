package service

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rental-agent/domain"
)

// RenderResaleChart plots the property value, the remaining loan balance and
// the net result of a sale for each year of the timeline as a PNG.
func RenderResaleChart(timeline []domain.ResaleYear) ([]byte, error) {
	if len(timeline) < 2 {
		return nil, fmt.Errorf("need at least 2 years, got %d", len(timeline))
	}

	years := make([]float64, len(timeline))
	valueY := make([]float64, len(timeline))
	balanceY := make([]float64, len(timeline))
	netY := make([]float64, len(timeline))

	for i, year := range timeline {
		years[i] = float64(year.Year)
		valueY[i] = year.PropertyValue
		balanceY[i] = year.RemainingBalance
		netY[i] = year.PotentialNetResult
	}

	valueSeries := chart.ContinuousSeries{
		Name: "Property value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: years,
		YValues: valueY,
	}

	balanceSeries := chart.ContinuousSeries{
		Name: "Remaining balance",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("dc2626"),
			StrokeWidth: 2,
		},
		XValues: years,
		YValues: balanceY,
	}

	netSeries := chart.ContinuousSeries{
		Name: "Net result if sold",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("16a34a"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: years,
		YValues: netY,
	}

	graph := chart.Chart{
		Title:  "Resale projection",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "Year",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			valueSeries,
			balanceSeries,
			netSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
