// Fakesource serves a small indicator workbook, so the data hub can be
// run end to end without the real one.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/alcortesm/datahub/pkg/httpdeco"
)

const (
	shutdownTimeoutSeconds   = 10
	readTimeoutSeconds       = 10
	writeTimeoutSeconds      = 10
	idleTimeoutSeconds       = 30
	readHeaderTimeoutSeconds = 2
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type config struct {
	Port  int    `default:"8081"`
	Sheet string `default:"Database"`
}

var rows = [][]interface{}{
	{"Sector", "Series Name", "Indicator", "Year", "Indicator Value", "Indicator Unit", "Province", "Tag"},
	{"Agriculture", "Cashew", "Farmers", 2022, 4100, "people", "Kampong Thom", "Cashew"},
	{"Agriculture", "Cashew", "Farmers", 2023, 5200, "people", "Kampong Thom", "Cashew"},
	{"Agriculture", "Cashew", "Farmers", 2023, 1800, "people", "Kratie", "Cashew"},
	{"Agriculture", "Cashew", "Farmers", 2023, 0, "people", "Takeo", "Cashew"},
	{"Agriculture", "Cashew", "Area", 2022, 12000, "ha", "Kampong Thom", "Cashew"},
	{"Agriculture", "Cashew", "Area", 2023, 13500, "ha", "Kampong Thom", "Cashew"},
	{"Agriculture", "Cashew", "Area", 2023, 2100, "ha", "Kratie", "Cashew"},
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	var config config
	envPrefix := "FAKESOURCE"
	err := envconfig.Process(envPrefix, &config)
	if err != nil {
		logger.Fatalf("processing environment variables: %v", err)
	}

	book, err := workbook(config.Sheet)
	if err != nil {
		logger.Fatalf("creating workbook: %v", err)
	}

	http.Handle("/datahub.xlsx", httpdeco.Decorate(
		workbookHandler(book),
		httpdeco.WithLogs(logger),
	))

	http.Handle("/", httpdeco.Decorate(
		http.NotFoundHandler(),
		httpdeco.WithLogs(logger),
	))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		ReadTimeout:       readTimeoutSeconds * time.Second,
		WriteTimeout:      writeTimeoutSeconds * time.Second,
		IdleTimeout:       idleTimeoutSeconds * time.Second,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
	}

	logger.Infof("starting server at port %d...", config.Port)

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %s", err)
		}
	}()

	<-done

	logger.Info("signal received: stopping server...")

	ctx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeoutSeconds*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("shutting down server: %+v", err)
	}
}

// workbook returns the bytes of a workbook with the fake rows in the
// given sheet.
func workbook(sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %v", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}

		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %v", i+1, err)
		}
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding: %v", err)
	}

	return b.Bytes(), nil
}

func workbookHandler(book []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-type", xlsxType)
		w.Write(book)
	})
}
