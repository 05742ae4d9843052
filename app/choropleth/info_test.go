package choropleth_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/alcortesm/datahub/app/choropleth"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	layer := choropleth.InfoContext{
		Region:     "Cambodia",
		SeriesName: "Cashew",
		Indicator:  "Farmers",
		Unit:       "people",
		Year:       2023,
	}

	feature := func(props geojson.Properties) *geojson.Feature {
		f := geojson.NewFeature(orb.Point{0, 0})
		f.Properties = props
		return f
	}

	subtests := []struct {
		name    string
		context choropleth.InfoContext
		feature *geojson.Feature
		want    choropleth.Info
	}{
		{
			name:    "no GIS",
			context: choropleth.InfoContext{NoGIS: true},
			feature: nil,
			want:    choropleth.Info{Header: "GIS is not available for this dataset!"},
		}, {
			name:    "nothing hovered",
			context: layer,
			feature: nil,
			want: choropleth.Info{
				Header: "Cambodia Cashew in 2023",
				Body:   "Hover over a location",
			},
		}, {
			name:    "no series, no header",
			context: choropleth.InfoContext{Indicator: "Farmers"},
			feature: nil,
			want:    choropleth.Info{Body: "Hover over a location"},
		}, {
			name:    "feature without a name",
			context: layer,
			feature: feature(geojson.Properties{choropleth.ValueProp: 10.0}),
			want: choropleth.Info{
				Header: "Cambodia Cashew in 2023",
				Body:   "No valid name available for this feature",
			},
		}, {
			name:    "feature without data",
			context: layer,
			feature: feature(geojson.Properties{
				choropleth.NameProp:  "Takeo",
				choropleth.ValueProp: nil,
			}),
			want: choropleth.Info{
				Header: "Cambodia Cashew in 2023",
				Name:   "Takeo",
				Body:   "No data available",
			},
		}, {
			name:    "name takes precedence over shapeName",
			context: layer,
			feature: feature(geojson.Properties{
				"name":               "Takeo Province",
				choropleth.NameProp:  "Takeo",
				choropleth.ValueProp: 1234567.4,
			}),
			want: choropleth.Info{
				Header: "Cambodia Cashew in 2023",
				Name:   "Takeo Province",
				Body:   "Farmers: 1,234,567 people",
			},
		}, {
			name: "no unit",
			context: choropleth.InfoContext{
				SeriesName: "Cashew",
				Indicator:  "Farmers",
			},
			feature: feature(geojson.Properties{
				choropleth.NameProp:  "Kratie",
				choropleth.ValueProp: 12.0,
			}),
			want: choropleth.Info{
				Header: "Cashew",
				Name:   "Kratie",
				Body:   "Farmers: 12",
			},
		},
	}

	for _, test := range subtests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := choropleth.Describe(test.context, test.feature)

			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}
