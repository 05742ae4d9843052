package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/alcortesm/datahub/app/choropleth"
	"github.com/alcortesm/datahub/app/indicator"
	"github.com/alcortesm/datahub/app/influx"
	"github.com/alcortesm/datahub/app/memstore"
	"github.com/alcortesm/datahub/app/series"
	"github.com/alcortesm/datahub/app/source"
	"github.com/alcortesm/datahub/app/web"
	"github.com/alcortesm/datahub/pkg/httpdeco"
)

type Config struct {
	Listen   string `default:":8080"`
	LogLevel string `split_words:"true" default:"info"`
	// Boundaries is the path of the province boundaries GeoJSON file,
	// the map is disabled if empty.
	Boundaries  string
	ZeroIsWhite bool `split_words:"true" default:"true"`
	Source      source.Config
	InfluxDB    influx.Config
	Map         web.MapConfig
}

const chartID = "apexLineChart"

func main() {
	ctx, cancel := signalContext(os.Interrupt, os.Kill)
	defer cancel()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var config Config
	envPrefix := "DATAHUB"
	err := envconfig.Process(envPrefix, &config)
	if err != nil {
		logger.Fatalf("processing environment variables: %v", err)
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logger.Fatalf("parsing log level: %v", err)
	}
	logger.SetLevel(level)

	if err := run(ctx, logger, config); err != nil && err != context.Canceled {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, logger *logrus.Logger, config Config) error {
	loader, err := source.NewLoader(logger.WithField("component", "source"), config.Source)
	if err != nil {
		return fmt.Errorf("creating loader: %v", err)
	}

	var boundaries *geojson.FeatureCollection
	if config.Boundaries != "" {
		boundaries, err = choropleth.LoadBoundaries(config.Boundaries)
		if err != nil {
			return fmt.Errorf("loading boundaries: %v", err)
		}
	}

	records := memstore.NewStore()
	panel := web.NewPanel(chartID)

	builder := series.DefaultBuilder()
	builder.SortYears = true
	chart := series.NewLineChart(builder, panel)

	var persistent *influx.Store
	if config.InfluxDB.Enabled {
		store, cancel := influx.NewStore(config.InfluxDB)
		defer cancel()
		persistent = store

		if err := warmUp(ctx, logger, persistent, records, chart); err != nil {
			logger.WithError(err).Warn("reading stored records")
		}
	}

	w := web.Web{
		Logger:     logger.WithField("component", "web"),
		Records:    records,
		Panel:      panel,
		Boundaries: boundaries,
		Style:      choropleth.Colorizer{ZeroIsSpecial: config.ZeroIsWhite}.Style,
		Map:        config.Map,
	}

	server := newServer(logger, config.Listen, w)

	g, ctx := errgroup.WithContext(ctx)

	loaded := make(chan []indicator.Record)

	g.Go(func() error {
		ticker := time.NewTicker(config.Source.Period)
		defer ticker.Stop()

		return source.Run(
			ctx,
			logger.WithField("component", "source"),
			loader,
			ticker.C,
			loaded,
		)
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case data := <-loaded:
				if err := update(ctx, data, records, persistent, chart); err != nil {
					logger.WithError(err).Error("updating records")
				}
			}
		}
	})

	g.Go(func() error {
		logger.WithField("addr", config.Listen).Info("listening...")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("serving: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %v", err)
		}

		return nil
	})

	return g.Wait()
}

// warmUp shows the records stored in InfluxDB until the workbook is
// loaded.
func warmUp(
	ctx context.Context,
	logger logrus.FieldLogger,
	from *influx.Store,
	to *memstore.Store,
	chart *series.LineChart,
) error {
	data, err := from.Get(ctx, indicator.Filter{})
	if err != nil {
		return fmt.Errorf("getting records: %v", err)
	}

	if err := to.Replace(ctx, data...); err != nil {
		return fmt.Errorf("replacing records: %v", err)
	}

	if _, err := chart.Update(data); err != nil {
		return fmt.Errorf("updating chart: %v", err)
	}

	logger.WithField("records", len(data)).Info("warmed up from influxdb")

	return nil
}

func update(
	ctx context.Context,
	data []indicator.Record,
	records *memstore.Store,
	persistent *influx.Store,
	chart *series.LineChart,
) error {
	if err := records.Replace(ctx, data...); err != nil {
		return fmt.Errorf("replacing records: %v", err)
	}

	if persistent != nil {
		if err := persistent.Add(ctx, data...); err != nil {
			return fmt.Errorf("storing records in influxdb: %v", err)
		}
	}

	if _, err := chart.Update(data); err != nil {
		return fmt.Errorf("updating chart: %v", err)
	}

	return nil
}

func newServer(logger *logrus.Logger, addr string, w web.Web) *http.Server {
	metrics := httpdeco.NewMetrics("datahub")
	mux := http.NewServeMux()

	handle := func(path, name string, h http.Handler) {
		mux.Handle(path, httpdeco.Decorate(
			h,
			metrics.WithMetrics(name),
			httpdeco.WithLogs(logger),
		))
	}

	handle("/", "dashboard", exact("/", w.DashboardHandler()))
	handle("/style.css", "style", w.StyleHandler())
	handle("/chart.js", "chart", w.ChartHandler())
	handle("/map.geojson", "map", w.MapHandler())
	handle("/legend.json", "legend", w.LegendHandler())
	mux.Handle("/metrics", metrics.Handler())

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// exact serves h only for the given path, and 404 for everything else
// the pattern catches.
func exact(path string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func signalContext(signals ...os.Signal) (
	context.Context, context.CancelFunc) {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(c)
	}()

	return ctx, cancel
}
