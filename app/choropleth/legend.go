package choropleth

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LegendEntry is one band of a map legend.
type LegendEntry struct {
	Label     string `json:"label"`
	Color     string `json:"color"`
	TextColor string `json:"textColor"`
}

// Legend returns one entry per class that has a color, labeled with the
// breakpoint the values must exceed. Colors must be hex colors.
func Legend(classes []float64, colorscale []Color) ([]LegendEntry, error) {
	result := []LegendEntry{}

	for i, class := range classes {
		if i >= len(colorscale) {
			break
		}

		c, err := colorful.Hex(string(colorscale[i]))
		if err != nil {
			return nil, fmt.Errorf("parsing color %d (%q): %v",
				i, colorscale[i], err)
		}

		result = append(result, LegendEntry{
			Label:     printer.Sprintf("%.0f+", class),
			Color:     c.Hex(),
			TextColor: textColor(c),
		})
	}

	return result, nil
}

// textColor returns black for light backgrounds and white for dark ones.
func textColor(background colorful.Color) string {
	l, _, _ := background.Lab()
	if l > 0.55 {
		return "#000000"
	}

	return "#ffffff"
}
