package choropleth

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Hideout is the context shared by all the features of a map layer.
//
// Classes must be ascending and without duplicates, and Colorscale must
// have a color for every class a value can exceed.
type Hideout struct {
	Classes    []float64 `json:"classes"`
	Colorscale []Color   `json:"colorscale"`
	Style      *Style    `json:"style"`
	ColorProp  string    `json:"colorProp"`
}

// StyleFunc returns the style of a feature in a map layer.
type StyleFunc func(f *geojson.Feature, h *Hideout) *Style

// Colorizer styles features by their class. Its Style method is a
// StyleFunc.
type Colorizer struct {
	// ZeroIsSpecial paints features with a value of zero in white
	// instead of looking up their class.
	ZeroIsSpecial bool
}

func (c Colorizer) Style(f *geojson.Feature, h *Hideout) *Style {
	return Colorize(f.Properties, h, c.ZeroIsSpecial)
}

// Colorize sets the fill color of the hideout style from the value of
// the ColorProp property and returns that same style; the rest of the
// style is left untouched.
//
// Features without a value get no fill. Otherwise every class the value
// exceeds overwrites the fill color, so the highest one wins. A value
// that exceeds no class, or an empty list of classes, leaves the fill
// color as it was.
func Colorize(props geojson.Properties, h *Hideout, zeroIsSpecial bool) *Style {
	if h.Style == nil {
		h.Style = &Style{}
	}
	style := h.Style

	raw, ok := props[h.ColorProp]
	if !ok || raw == nil {
		style.FillColor = NoFill
		return style
	}

	value, isNumber := toFloat(raw)

	if zeroIsSpecial && isNumber && value == 0 {
		style.FillColor = White
		return style
	}

	for i, class := range h.Classes {
		if value > class {
			style.FillColor = h.Colorscale[i]
		}
	}

	return style
}

// toFloat converts a property value to a float. Numeric strings are
// converted too, but they are not reported as numbers. Values that
// cannot be converted become NaN, which is never above a class.
func toFloat(v interface{}) (f float64, isNumber bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN(), false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN(), false
		}
		return f, false
	}

	return math.NaN(), false
}
