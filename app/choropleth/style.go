// Package choropleth colors map features by the class their value falls
// in, and prepares the data the map layer needs to do so.
package choropleth

import "encoding/json"

// Color is a CSS color. The empty Color means no color at all and is
// encoded as JSON null, which Leaflet takes as "do not fill".
type Color string

const (
	NoFill Color = ""
	White  Color = "#ffffff"
)

func (c Color) MarshalJSON() ([]byte, error) {
	if c == NoFill {
		return []byte("null"), nil
	}

	return json.Marshal(string(c))
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == nil {
		*c = NoFill
		return nil
	}

	*c = Color(*s)

	return nil
}

// Style holds the Leaflet path options of a feature.
type Style struct {
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	Color       string  `json:"color"`
	DashArray   string  `json:"dashArray"`
	FillOpacity float64 `json:"fillOpacity"`
	FillColor   Color   `json:"fillColor"`
}

// DefaultStyle returns the style of the province boundaries: a thin
// dashed white outline over a translucent fill.
func DefaultStyle() *Style {
	return &Style{
		Weight:      2,
		Opacity:     1,
		Color:       "white",
		DashArray:   "3",
		FillOpacity: 0.7,
	}
}

// DefaultColorscale goes from light to dark green, one color per class.
var DefaultColorscale = []Color{
	"#a1d99b",
	"#31a354",
	"#2c8e34",
	"#196d30",
	"#134e20",
	"#0d3b17",
}
