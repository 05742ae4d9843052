package influx

import (
	"context"
	"fmt"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/query"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/influxdata/influxdb-client-go/v2/log"

	"github.com/alcortesm/datahub/app/indicator"
)

func init() {
	log.Log = nil
}

type Config struct {
	Enabled     bool   `default:"false"`
	URL         string `default:"http://localhost:8086"`
	TokenWrite  string `split_words:"true"`
	TokenRead   string `split_words:"true"`
	Org         string `default:"cdri"`
	Bucket      string `default:"datahub"`
	Measurement string `default:"indicators"`
}

const valueFieldKey = "value"

// tag keys, each record becomes a point with these tags
const (
	indicatorTag  = "indicator"
	seriesTag     = "series"
	provinceTag   = "province"
	sectorTag     = "sector"
	subSector1Tag = "sub_sector_1"
	subSector2Tag = "sub_sector_2"
	unitTag       = "unit"
	tagTag        = "tag"
)

// the earliest year we expect to find in the data hub
const epoch = 1900

// Store keeps indicator records in InfluxDB, one point per record,
// timestamped at the start of the record's year.
//
// Points with the same tags and year overwrite each other, so the last
// record added for a key wins.
type Store struct {
	config   Config
	writeAPI api.WriteAPIBlocking
	queryAPI api.QueryAPI
}

func NewStore(config Config) (store *Store, cancel func()) {
	opts := influxdb2.DefaultOptions().
		SetPrecision(time.Second)

	wc := influxdb2.NewClientWithOptions(
		config.URL,
		config.TokenWrite,
		opts,
	)

	rc := influxdb2.NewClientWithOptions(
		config.URL,
		config.TokenRead,
		opts,
	)

	store = &Store{
		config:   config,
		writeAPI: wc.WriteAPIBlocking(config.Org, config.Bucket),
		queryAPI: rc.QueryAPI(config.Org),
	}

	cancel = func() {
		wc.Close()
		rc.Close()
	}

	return store, cancel
}

func (s *Store) Add(ctx context.Context, data ...indicator.Record) error {
	if len(data) == 0 {
		return nil
	}

	points := make([]*write.Point, len(data))
	{
		for i, d := range data {
			fields := map[string]interface{}{
				valueFieldKey: d.Value,
			}

			points[i] = influxdb2.NewPoint(
				s.config.Measurement,
				tags(d),
				fields,
				yearStart(d.Year),
			)
		}
	}

	if err := s.writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("writing points: %v", err)
	}

	return nil
}

// tags returns the non-empty tags of a record, InfluxDB does not
// accept empty tag values.
func tags(r indicator.Record) map[string]string {
	all := map[string]string{
		indicatorTag:  r.Indicator,
		seriesTag:     r.SeriesName,
		provinceTag:   r.Province,
		sectorTag:     r.Sector,
		subSector1Tag: r.SubSector1,
		subSector2Tag: r.SubSector2,
		unitTag:       r.Unit,
		tagTag:        r.Tag,
	}

	result := map[string]string{}
	for k, v := range all {
		if v != "" {
			result[k] = v
		}
	}

	return result
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func (s *Store) Get(
	ctx context.Context,
	f indicator.Filter,
) ([]indicator.Record, error) {
	table, err := s.queryAPI.Query(ctx, s.query(f))
	if err != nil {
		return nil, fmt.Errorf("query error: %v", err)
	}

	result := []indicator.Record{}

	for table.Next() {
		r, err := recordFromFlux(table.Record())
		if err != nil {
			return nil, fmt.Errorf("invalid influx record: %v", err)
		}

		result = append(result, r)
	}

	if err := table.Err(); err != nil {
		return nil, fmt.Errorf("table error: %s", err)
	}

	return result, nil
}

// query returns the Flux query for the records that pass the filter,
// sorted chronologically.
func (s *Store) query(f indicator.Filter) string {
	start, stop := yearStart(epoch), time.Now().UTC().AddDate(1, 0, 0)
	if f.Year != 0 {
		start, stop = yearStart(f.Year), yearStart(f.Year+1)
	}

	var predicates strings.Builder

	fmt.Fprintf(&predicates, "(r._measurement == %q) and (r._field == %q)",
		s.config.Measurement, valueFieldKey)

	type equal struct{ tag, value string }

	equals := []equal{
		{indicatorTag, f.Indicator},
		{seriesTag, f.SeriesName},
		{sectorTag, f.Sector},
		{subSector1Tag, f.SubSector1},
		{subSector2Tag, f.SubSector2},
		{tagTag, f.Tag},
	}

	if f.Province != indicator.AllProvinces {
		equals = append(equals, equal{provinceTag, f.Province})
	}

	for _, e := range equals {
		if e.value == "" {
			continue
		}
		fmt.Fprintf(&predicates, " and (r.%s == %q)", e.tag, e.value)
	}

	return fmt.Sprintf(`from(bucket:%q)
			|> range(start: %s, stop: %s)
			|> filter(fn: (r) => %s)
			|> group()
			|> sort(columns: ["_time"])`,
		s.config.Bucket,
		start.Format(time.RFC3339),
		stop.Format(time.RFC3339),
		predicates.String(),
	)
}

func recordFromFlux(r *query.FluxRecord) (indicator.Record, error) {
	value, ok := r.Value().(float64)
	if !ok {
		return indicator.Record{}, fmt.Errorf(
			"value at %s: want float64, got %T instead",
			r.Time().Format(time.RFC3339), r.Value())
	}

	return indicator.Record{
		Year:       r.Time().UTC().Year(),
		Indicator:  tagValue(r, indicatorTag),
		Value:      value,
		Unit:       tagValue(r, unitTag),
		SeriesName: tagValue(r, seriesTag),
		Sector:     tagValue(r, sectorTag),
		SubSector1: tagValue(r, subSector1Tag),
		SubSector2: tagValue(r, subSector2Tag),
		Province:   tagValue(r, provinceTag),
		Tag:        tagValue(r, tagTag),
	}, nil
}

// tagValue returns the value of a tag or an empty string for tags that
// were not written.
func tagValue(r *query.FluxRecord, key string) string {
	s, _ := r.ValueByKey(key).(string)
	return s
}
