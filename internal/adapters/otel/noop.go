package otel

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/streamstats/internal/ports"
)

// NoOpExporter is used when no collector is configured. Loads only show up
// in debug logs.
type NoOpExporter struct{}

func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordLoad(_ context.Context, m *ports.LoadMetrics) error {
	log.Debug().
		Str("source", m.Source).
		Int("records", m.Records).
		Int("profiles", m.Profiles).
		Dur("duration", m.Duration).
		Str("error_kind", m.ErrorKind).
		Msg("Load recorded")
	return nil
}

func (e *NoOpExporter) Close(context.Context) error {
	return nil
}
