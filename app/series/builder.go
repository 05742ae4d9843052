package series

import (
	"math"
	"sort"

	"github.com/alcortesm/datahub/app/indicator"
)

const (
	lineType     = "line"
	categoryType = "category"
)

// Builder turns indicator records into line chart configurations.
// The zero value builds untitled charts with years in first-seen order.
type Builder struct {
	Title      string
	Subtitle   string
	YAxisTitle string
	Height     string
	// SortYears orders the year categories ascending instead of in the
	// order they are first seen in the records.
	SortYears bool
}

// DefaultBuilder returns the builder used by the rice production panel.
func DefaultBuilder() Builder {
	return Builder{
		Title:      "Rice Production Trends",
		Subtitle:   "A comprehensive view of rice production indicators over the years",
		YAxisTitle: "Rice Production Indicators",
		Height:     "85%",
	}
}

// Build groups the records by year and indicator and returns a chart
// with one line per indicator and one category per year.
//
// Records are not required to be unique per year and indicator: the
// last one wins. A year without a value for an indicator is plotted as
// 0, so a missing observation looks like a true zero.
func (b Builder) Build(records []indicator.Record) *Config {
	grouped := map[int]map[string]float64{}
	years := []int{}

	for _, r := range records {
		byIndicator, ok := grouped[r.Year]
		if !ok {
			byIndicator = map[string]float64{}
			grouped[r.Year] = byIndicator
			years = append(years, r.Year)
		}
		byIndicator[r.Indicator] = r.Value
	}

	if b.SortYears {
		sort.Ints(years)
	}

	indicators := indicator.Indicators(records)

	series := make([]Series, len(indicators))
	for i, name := range indicators {
		data := make([]float64, len(years))
		for j, year := range years {
			v, ok := grouped[year][name]
			if !ok || math.IsNaN(v) {
				v = 0
			}
			data[j] = v
		}

		series[i] = Series{
			Name: name,
			Type: lineType,
			Data: data,
		}
	}

	return &Config{
		Series: series,
		Labels: years,
		XAxis: XAxis{
			Type:       categoryType,
			Categories: years,
		},
		YAxis: YAxis{Title: Text{Text: b.YAxisTitle}},
		Chart: Chart{Height: b.Height},
		Stroke: Stroke{
			Width: 2,
			Curve: "smooth",
		},
		Title: Title{
			Text:  b.Title,
			Align: "left",
			Style: TextStyle{FontSize: "22px", FontWeight: "bold"},
		},
		Subtitle: Title{
			Text:  b.Subtitle,
			Align: "left",
			Style: TextStyle{FontSize: "16px", FontWeight: "normal"},
		},
		DataLabels: DataLabels{Enabled: true},
		Tooltip: Tooltip{
			Shared:    true,
			Intersect: false,
		},
	}
}
