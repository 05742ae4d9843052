package web

import (
	"context"
	"net/http"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/alcortesm/datahub/app/choropleth"
	"github.com/alcortesm/datahub/app/indicator"
)

// Web serves the dashboard. Its dependencies are given explicitly: the
// panel the line chart is drawn in, and the function that styles the
// features of the map.
type Web struct {
	Logger  logrus.FieldLogger
	Records Getter
	Panel   *Panel
	// Boundaries are the map features, nil when there is no map.
	Boundaries *geojson.FeatureCollection
	Style      choropleth.StyleFunc
	Map        MapConfig
}

// MapConfig holds the defaults of the map layer.
type MapConfig struct {
	Region     string `default:"Cambodia"`
	SeriesName string `split_words:"true"`
	Year       int    `default:"2023"`
	NameProp   string `split_words:"true" default:"shapeName"`
}

// Getter knows how to get indicator records.
type Getter interface {
	Get(context.Context, indicator.Filter) ([]indicator.Record, error)
}

func (w Web) DashboardHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-type", "text/html")
		rw.Write([]byte(dashboard))
	})
}

func (w Web) StyleHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-type", "text/css")
		rw.Write([]byte(css))
	})
}

func (w Web) ChartHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-type", "application/javascript")
		rw.Write(w.Panel.Script())
	})
}
