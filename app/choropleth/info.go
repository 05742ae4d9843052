package choropleth

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb/geojson"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// InfoContext describes the layer a hovered feature belongs to.
type InfoContext struct {
	Region     string
	SeriesName string
	Indicator  string
	Unit       string
	Year       int
	// NoGIS is set for datasets that cannot be mapped.
	NoGIS bool
}

// Info is the text of the hover box of a map.
type Info struct {
	Header string `json:"header"`
	Name   string `json:"name,omitempty"`
	Body   string `json:"body"`
}

// Describe returns the hover text for a feature joined with Join; f is
// nil when nothing is being hovered.
func Describe(c InfoContext, f *geojson.Feature) Info {
	if c.NoGIS {
		return Info{Header: "GIS is not available for this dataset!"}
	}

	var info Info

	if c.SeriesName != "" {
		parts := []string{c.Region, c.SeriesName}
		if c.Year != 0 {
			parts = append(parts, fmt.Sprintf("in %d", c.Year))
		}
		info.Header = strings.Join(nonEmpty(parts), " ")
	}

	if f == nil {
		info.Body = "Hover over a location"
		return info
	}

	info.Name = featureName(f)
	if info.Name == "" {
		info.Body = "No valid name available for this feature"
		return info
	}

	raw := f.Properties[ValueProp]
	if raw == nil {
		info.Body = "No data available"
		return info
	}

	value, _ := toFloat(raw)
	if math.IsNaN(value) {
		info.Body = "No data available"
		return info
	}

	body := printer.Sprintf("%s: %.0f %s", c.Indicator, value, c.Unit)
	info.Body = strings.TrimSpace(body)

	return info
}

func featureName(f *geojson.Feature) string {
	for _, key := range []string{"name", NameProp} {
		if name, ok := f.Properties[key].(string); ok && name != "" {
			return name
		}
	}

	return ""
}

func nonEmpty(ss []string) []string {
	result := ss[:0]
	for _, s := range ss {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}
