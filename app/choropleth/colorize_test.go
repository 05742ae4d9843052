package choropleth_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/alcortesm/datahub/app/choropleth"
)

const prop = "Yield"

var scale = []choropleth.Color{"c0", "c1", "c2"}

func hideout(classes []float64, fill choropleth.Color) *choropleth.Hideout {
	style := choropleth.DefaultStyle()
	style.FillColor = fill

	return &choropleth.Hideout{
		Classes:    classes,
		Colorscale: scale,
		Style:      style,
		ColorProp:  prop,
	}
}

func TestColorize(t *testing.T) {
	t.Parallel()

	const previous choropleth.Color = "previous"

	subtests := []struct {
		name          string
		props         geojson.Properties
		classes       []float64
		zeroIsSpecial bool
		want          choropleth.Color
	}{
		{
			name:    "missing value means no fill",
			props:   geojson.Properties{},
			classes: []float64{5, 10, 15},
			want:    choropleth.NoFill,
		}, {
			name:    "nil value means no fill",
			props:   geojson.Properties{prop: nil},
			classes: []float64{5, 10, 15},
			want:    choropleth.NoFill,
		}, {
			name:          "nil value means no fill, zero special",
			props:         geojson.Properties{prop: nil},
			classes:       []float64{5, 10, 15},
			zeroIsSpecial: true,
			want:          choropleth.NoFill,
		}, {
			name:    "highest exceeded class wins",
			props:   geojson.Properties{prop: 12.0},
			classes: []float64{5, 10, 15},
			want:    "c1",
		}, {
			name:    "breakpoints are exclusive",
			props:   geojson.Properties{prop: 10.0},
			classes: []float64{5, 10, 15},
			want:    "c0",
		}, {
			name:    "above all classes",
			props:   geojson.Properties{prop: 100.0},
			classes: []float64{5, 10, 15},
			want:    "c2",
		}, {
			name:    "below all classes keeps previous fill",
			props:   geojson.Properties{prop: 1.0},
			classes: []float64{5, 10, 15},
			want:    previous,
		}, {
			name:    "empty classes keeps previous fill",
			props:   geojson.Properties{prop: 12.0},
			classes: []float64{},
			want:    previous,
		}, {
			name:          "zero is white when special",
			props:         geojson.Properties{prop: 0.0},
			classes:       []float64{-10, -5, -1},
			zeroIsSpecial: true,
			want:          choropleth.White,
		}, {
			name:    "zero goes through classes when not special",
			props:   geojson.Properties{prop: 0.0},
			classes: []float64{-1, 5, 10},
			want:    "c0",
		}, {
			name:          "integer zero is white when special",
			props:         geojson.Properties{prop: 0},
			classes:       []float64{-1, 5, 10},
			zeroIsSpecial: true,
			want:          choropleth.White,
		}, {
			name:    "integer values",
			props:   geojson.Properties{prop: 12},
			classes: []float64{5, 10, 15},
			want:    "c1",
		}, {
			name:    "json numbers",
			props:   geojson.Properties{prop: json.Number("12")},
			classes: []float64{5, 10, 15},
			want:    "c1",
		}, {
			name:    "numeric strings",
			props:   geojson.Properties{prop: "12"},
			classes: []float64{5, 10, 15},
			want:    "c1",
		}, {
			name:          "string zero is not a special zero",
			props:         geojson.Properties{prop: "0"},
			classes:       []float64{-1, 5, 10},
			zeroIsSpecial: true,
			want:          "c0",
		}, {
			name:    "non numeric values keep previous fill",
			props:   geojson.Properties{prop: "lots"},
			classes: []float64{5, 10, 15},
			want:    previous,
		},
	}

	for _, test := range subtests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			h := hideout(test.classes, previous)

			got := choropleth.Colorize(test.props, h, test.zeroIsSpecial)

			if got != h.Style {
				t.Error("want the hideout style back, got another one")
			}

			if got.FillColor != test.want {
				t.Errorf("want fill %q, got %q", test.want, got.FillColor)
			}
		})
	}
}

func TestColorize_OnlyTouchesFill(t *testing.T) {
	t.Parallel()

	h := hideout([]float64{5, 10, 15}, choropleth.NoFill)

	got := choropleth.Colorize(geojson.Properties{prop: 12.0}, h, false)

	want := choropleth.DefaultStyle()
	want.FillColor = "c1"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestColorize_Idempotent(t *testing.T) {
	t.Parallel()

	values := []interface{}{nil, 0.0, 3.0, 5.0, 12.0, 99.0}

	for _, zeroIsSpecial := range []bool{false, true} {
		for _, v := range values {
			name := fmt.Sprintf("%v %t", v, zeroIsSpecial)
			props := geojson.Properties{prop: v}
			h := hideout([]float64{-1, 5, 10}, choropleth.NoFill)

			first := choropleth.Colorize(props, h, zeroIsSpecial).FillColor
			second := choropleth.Colorize(props, h, zeroIsSpecial).FillColor

			if first != second {
				t.Errorf("%s: first %q, second %q", name, first, second)
			}
		}
	}
}

func TestColorize_NilStyle(t *testing.T) {
	t.Parallel()

	h := &choropleth.Hideout{
		Classes:    []float64{5, 10, 15},
		Colorscale: scale,
		ColorProp:  prop,
	}

	got := choropleth.Colorize(geojson.Properties{prop: 12.0}, h, false)

	if got == nil || got.FillColor != "c1" {
		t.Errorf("want fill c1, got %#v", got)
	}
}

func TestColorizer_Style(t *testing.T) {
	t.Parallel()

	f := geojson.NewFeature(orb.Point{104.9, 11.5})
	f.Properties[prop] = 0.0

	subtests := map[string]struct {
		colorizer choropleth.Colorizer
		want      choropleth.Color
	}{
		"zero is special":     {choropleth.Colorizer{ZeroIsSpecial: true}, choropleth.White},
		"zero is not special": {choropleth.Colorizer{}, "c0"},
	}

	for name, test := range subtests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var style choropleth.StyleFunc = test.colorizer.Style

			got := style(f, hideout([]float64{-1, 5, 10}, choropleth.NoFill))
			if got.FillColor != test.want {
				t.Errorf("want fill %q, got %q", test.want, got.FillColor)
			}
		})
	}
}

func TestStyle_JSON(t *testing.T) {
	t.Parallel()

	subtests := map[string]struct {
		fill choropleth.Color
		want string
	}{
		"no fill is null": {
			fill: choropleth.NoFill,
			want: `{"weight":2,"opacity":1,"color":"white","dashArray":"3","fillOpacity":0.7,"fillColor":null}`,
		},
		"fill is a string": {
			fill: "#31a354",
			want: `{"weight":2,"opacity":1,"color":"white","dashArray":"3","fillOpacity":0.7,"fillColor":"#31a354"}`,
		},
	}

	for name, test := range subtests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			style := choropleth.DefaultStyle()
			style.FillColor = test.fill

			got, err := json.Marshal(style)
			if err != nil {
				t.Fatal(err)
			}

			if string(got) != test.want {
				t.Errorf("\nwant %s\n got %s", test.want, got)
			}

			var back choropleth.Style
			if err := json.Unmarshal(got, &back); err != nil {
				t.Fatal(err)
			}

			if back.FillColor != test.fill {
				t.Errorf("decoded fill: want %q, got %q",
					test.fill, back.FillColor)
			}
		})
	}
}
