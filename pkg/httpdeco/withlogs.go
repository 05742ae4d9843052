package httpdeco

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// WithLogs logs every request, with its status and how long it took to
// serve it.
func WithLogs(l logrus.FieldLogger) Decorator {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verbose := &verboseResponseWriter{ResponseWriter: w}

			start := time.Now()
			h.ServeHTTP(verbose, r)
			elapsed := time.Since(start)

			entry := l.WithFields(logrus.Fields{
				"method":  r.Method,
				"url":     r.URL.String(),
				"status":  verbose.status,
				"elapsed": elapsed,
			})

			if verbose.writeError != nil {
				entry.WithError(verbose.writeError).Warn("request")
				return
			}

			entry.Info("request")
		})
	}
}

// VerboseResponseWriter wraps an http.ResponseWriter so you can
// inspect the status code and the write error after writing
// the response.
//
// Note this will hide optional methods in the http.ResponseWriter like
// http.Flusher or http.Hijacker.
type verboseResponseWriter struct {
	http.ResponseWriter
	status     int   // the status code set by the handler
	writeError error // the error returned by the last call to Write
}

func (w *verboseResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *verboseResponseWriter) Write(b []byte) (int, error) {
	// If WriteHeader has not yet been called, Write sets
	// status to http.StatusOK before writing the data.
	if w.status == 0 {
		w.status = http.StatusOK
	}

	var n int
	n, w.writeError = w.ResponseWriter.Write(b)

	return n, w.writeError
}
