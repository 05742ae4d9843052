package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/alcortesm/datahub/app/indicator"
)

// Config tells where to find the data hub workbook and how often to
// load it again. Either Path or URL must be set; URL wins if both are.
type Config struct {
	Path    string
	URL     string
	Sheet   string        `default:"Database"`
	Period  time.Duration `default:"1h"`
	Timeout time.Duration `default:"30s"`
}

// Loader knows how to load indicator records.
type Loader interface {
	Load(context.Context) ([]indicator.Record, error)
}

// NewLoader returns the loader for the configured workbook location.
func NewLoader(logger logrus.FieldLogger, config Config) (Loader, error) {
	sheet := config.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	switch {
	case config.URL != "":
		client := &http.Client{Timeout: config.Timeout}
		return NewFetcher(logger, client, config.URL, sheet), nil
	case config.Path != "":
		return NewFile(logger, config.Path, sheet), nil
	}

	return nil, errors.New("no workbook path or URL")
}

// File loads records from a workbook in the local filesystem.
type File struct {
	logger logrus.FieldLogger
	path   string
	sheet  string
}

func NewFile(logger logrus.FieldLogger, path, sheet string) *File {
	return &File{
		logger: logger,
		path:   path,
		sheet:  sheet,
	}
}

func (f *File) Load(_ context.Context) ([]indicator.Record, error) {
	book, err := excelize.OpenFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v", f.path, err)
	}
	defer book.Close()

	return parse(f.logger.WithField("path", f.path), book, f.sheet)
}

// Fetcher downloads the workbook from a URL each time it loads.
type Fetcher struct {
	logger logrus.FieldLogger
	client HTTPer
	url    string
	sheet  string
}

type HTTPer interface {
	Do(*http.Request) (*http.Response, error)
}

func NewFetcher(
	logger logrus.FieldLogger,
	client HTTPer,
	url string,
	sheet string,
) *Fetcher {
	return &Fetcher{
		logger: logger,
		client: client,
		url:    url,
		sheet:  sheet,
	}
}

func (f *Fetcher) Load(ctx context.Context) ([]indicator.Record, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		f.url,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed GET %s: %v", f.url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf(
				"status %d (%s); error reading response body: %v",
				resp.StatusCode, http.StatusText(resp.StatusCode), err)
		}

		return nil, fmt.Errorf(
			"unsuccessful response: status %d (%s); body: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), body,
		)
	}

	book, err := excelize.OpenReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding workbook: %v", err)
	}
	defer book.Close()

	return parse(f.logger.WithField("url", f.url), book, f.sheet)
}

func parse(
	logger logrus.FieldLogger,
	book *excelize.File,
	sheet string,
) ([]indicator.Record, error) {
	records, skipped, err := Parse(book, sheet)
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		logger.WithFields(logrus.Fields{
			"sheet":   sheet,
			"skipped": skipped,
		}).Warn("skipped malformed rows")
	}

	return records, nil
}

// Run loads records each time the trigger fires, starting right away,
// and sends them to the loaded channel. Failed loads are logged and
// retried at the next trigger. It returns when the context is canceled
// or the trigger is closed.
func Run(
	ctx context.Context,
	logger logrus.FieldLogger,
	loader Loader,
	trigger <-chan time.Time,
	loaded chan<- []indicator.Record,
) error {
	logger.Info("start loading...")
	defer logger.Info("stopped loading")

	for {
		records, err := loader.Load(ctx)
		if err != nil {
			logger.WithError(err).Error("loading records")
		} else {
			logger.WithField("records", len(records)).Debug("loaded")

			select {
			case loaded <- records:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		// wait for a trigger or a cancelation of the context
		select {
		case _, ok := <-trigger:
			if !ok {
				return fmt.Errorf("closed trigger channel")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
