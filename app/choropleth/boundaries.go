package choropleth

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// LoadBoundaries reads a GeoJSON feature collection, like the province
// boundaries of a country, from a file.
func LoadBoundaries(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading boundaries: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decoding boundaries %s: %v", path, err)
	}

	return fc, nil
}
