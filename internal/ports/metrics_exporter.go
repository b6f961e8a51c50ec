package ports

import (
	"context"
	"time"
)

// MetricsExporter exports load and render metrics to an external observability system.
type MetricsExporter interface {
	// RecordLoad records the outcome of loading one export.
	RecordLoad(ctx context.Context, m *LoadMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// LoadMetrics describes a single load of a viewing activity export.
type LoadMetrics struct {
	Source   string // "upload", "example", "file"
	Records  int
	Profiles int
	Duration time.Duration

	// ErrorKind is empty on success.
	ErrorKind string
}

// Failed reports whether the load aborted.
func (m *LoadMetrics) Failed() bool {
	return m.ErrorKind != ""
}
