package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/alcortesm/datahub/app/choropleth"
	"github.com/alcortesm/datahub/app/indicator"
)

// Properties added to each feature served by the map handler.
const (
	StyleProp = "style"
	InfoProp  = "info"
)

var errNoData = errors.New("no data available")

// layer is the data of the map for one indicator and year.
type layer struct {
	info    choropleth.InfoContext
	records []indicator.Record
	classes []float64
}

// layer reads the series, indicator and year of a map request, falling
// back to the configured ones, and gets the records to show. Without
// an indicator, the first one in alphabetical order is shown.
func (w Web) layer(r *http.Request) (*layer, int, error) {
	q := r.URL.Query()

	year := w.Map.Year
	if s := q.Get("year"); s != "" {
		var err error
		year, err = strconv.Atoi(s)
		if err != nil {
			return nil, http.StatusBadRequest,
				fmt.Errorf("invalid year %q", s)
		}
	}

	seriesName := w.Map.SeriesName
	if s := q.Get("series"); s != "" {
		seriesName = s
	}

	filter := indicator.Filter{
		SeriesName: seriesName,
		Year:       year,
	}

	records, err := w.Records.Get(r.Context(), filter)
	if err != nil {
		return nil, http.StatusInternalServerError,
			fmt.Errorf("getting records: %v", err)
	}

	name := q.Get("indicator")
	if name == "" {
		names := indicator.Indicators(records)
		if len(names) == 0 {
			return nil, http.StatusNotFound, errNoData
		}
		sort.Strings(names)
		name = names[0]
	}

	records = indicator.Filter{Indicator: name}.Apply(records)
	if len(records) == 0 {
		return nil, http.StatusNotFound, errNoData
	}

	l := &layer{
		info: choropleth.InfoContext{
			Region:     w.Map.Region,
			SeriesName: records[0].SeriesName,
			Indicator:  name,
			Unit:       records[0].Unit,
			Year:       year,
		},
		records: records,
		classes: choropleth.Breaks(
			indicator.Values(records),
			choropleth.DefaultClasses,
		),
	}

	return l, http.StatusOK, nil
}

func (w Web) nameProp() string {
	if w.Map.NameProp == "" {
		return choropleth.NameProp
	}

	return w.Map.NameProp
}

// MapHandler serves the map features joined with the records of the
// requested layer, each one with its style and hover text.
func (w Web) MapHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if w.Boundaries == nil {
			noGIS := choropleth.Describe(choropleth.InfoContext{NoGIS: true}, nil)
			http.Error(rw, noGIS.Header, http.StatusNotFound)
			return
		}

		l, status, err := w.layer(r)
		if err != nil {
			http.Error(rw, err.Error(), status)
			return
		}

		fc := choropleth.Clone(w.Boundaries)
		choropleth.Join(fc, l.records, l.info.Indicator, l.info.Year, w.nameProp())

		base := choropleth.DefaultStyle()

		for _, f := range fc.Features {
			// every feature starts from a fresh style, otherwise
			// features under the lowest class would inherit the fill
			// of the previous one.
			style := *base
			hideout := &choropleth.Hideout{
				Classes:    l.classes,
				Colorscale: choropleth.DefaultColorscale,
				Style:      &style,
				ColorProp:  choropleth.ValueProp,
			}

			f.Properties[StyleProp] = *w.Style(f, hideout)
			f.Properties[InfoProp] = choropleth.Describe(l.info, f)
		}

		data, err := fc.MarshalJSON()
		if err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
			return
		}

		rw.Header().Set("Content-type", "application/geo+json")
		rw.Write(data)
	})
}

// LegendHandler serves the color bands of the requested layer.
func (w Web) LegendHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		l, status, err := w.layer(r)
		if err != nil {
			http.Error(rw, err.Error(), status)
			return
		}

		legend, err := choropleth.Legend(l.classes, choropleth.DefaultColorscale)
		if err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
			return
		}

		rw.Header().Set("Content-type", "application/json")

		if err := json.NewEncoder(rw).Encode(legend); err != nil {
			w.Logger.WithError(err).Error("encoding legend")
		}
	})
}
