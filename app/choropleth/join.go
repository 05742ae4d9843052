package choropleth

import (
	"github.com/paulmach/orb/geojson"

	"github.com/alcortesm/datahub/app/indicator"
)

// NameProp is the property holding the province name in the
// geoBoundaries files.
const NameProp = "shapeName"

// Properties set on joined features.
const (
	ValueProp      = "Indicator Value"
	SeriesNameProp = "Series Name"
	IndicatorProp  = "Indicator"
	YearProp       = "Year"
)

// Join copies into each feature the value of the given indicator and
// year for the province named by its nameProp property. The value goes
// into ValueProp, which is set to nil for provinces without data, and
// the indicator name into IndicatorProp. When a province has several
// records, the first one is used.
func Join(
	fc *geojson.FeatureCollection,
	records []indicator.Record,
	indicatorName string,
	year int,
	nameProp string,
) {
	byProvince := map[string]*indicator.Record{}

	for i := range records {
		r := &records[i]
		if r.Indicator != indicatorName || r.Year != year {
			continue
		}
		if _, ok := byProvince[r.Province]; !ok {
			byProvince[r.Province] = r
		}
	}

	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = geojson.Properties{}
		}

		name, _ := f.Properties[nameProp].(string)

		r, ok := byProvince[name]
		if !ok {
			f.Properties[ValueProp] = nil
			continue
		}

		f.Properties[ValueProp] = r.Value
		f.Properties[SeriesNameProp] = r.SeriesName
		f.Properties[IndicatorProp] = indicatorName
		f.Properties[YearProp] = year
	}
}

// Clone returns a copy of the collection that can be joined without
// touching the original. Geometries are shared.
func Clone(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	result := geojson.NewFeatureCollection()
	result.BBox = fc.BBox

	for _, f := range fc.Features {
		result.Append(&geojson.Feature{
			ID:         f.ID,
			Type:       f.Type,
			BBox:       f.BBox,
			Geometry:   f.Geometry,
			Properties: f.Properties.Clone(),
		})
	}

	return result
}
