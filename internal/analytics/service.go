package analytics

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/streamstats/internal/parser"
	"github.com/emiliopalmerini/streamstats/internal/ports"
)

// DefaultPreviewRows matches the number of rows shown in the data preview.
const DefaultPreviewRows = 5

// Service turns an uploaded export into a Report. It holds no table of its
// own; every call loads and aggregates from scratch.
type Service struct {
	metrics     ports.MetricsExporter
	previewRows int
}

// NewService creates a new analytics service.
func NewService(metrics ports.MetricsExporter, previewRows int) *Service {
	if previewRows <= 0 {
		previewRows = DefaultPreviewRows
	}
	return &Service{
		metrics:     metrics,
		previewRows: previewRows,
	}
}

// Load parses r into a Table. Load errors abort the whole input.
func (s *Service) Load(ctx context.Context, source string, r io.Reader) (*Table, error) {
	started := time.Now()

	records, err := parser.ParseActivity(r)
	if err != nil {
		s.record(ctx, &ports.LoadMetrics{
			Source:    source,
			ErrorKind: parser.LoadErrorKind(err),
			Duration:  time.Since(started),
		})
		return nil, fmt.Errorf("failed to load %s: %w", source, err)
	}

	table := NewTable(records)
	s.record(ctx, &ports.LoadMetrics{
		Source:   source,
		Records:  table.Len(),
		Profiles: len(table.Profiles()),
		Duration: time.Since(started),
	})
	return table, nil
}

// BuildReport loads r and computes every chart of the dashboard.
func (s *Service) BuildReport(ctx context.Context, source string, r io.Reader) (*Report, error) {
	id := uuid.NewString()
	logger := log.With().Str("render_id", id).Str("source", source).Logger()

	table, err := s.Load(ctx, source, r)
	if err != nil {
		logger.Warn().Err(err).Str("kind", parser.LoadErrorKind(err)).Msg("Load failed")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := Summarize(table, s.previewRows)
	report.ID = id
	report.Source = source

	logger.Info().
		Int("records", report.Records).
		Int("profiles", len(report.Profiles)).
		Msg("Report built")
	return report, nil
}

// Summarize computes the report for an already loaded table.
func Summarize(table *Table, previewRows int) *Report {
	preview := table.Preview(previewRows)
	rows := make([]PreviewRow, len(preview))
	for i, r := range preview {
		rows[i] = NewPreviewRow(r)
	}

	profiles := table.Profiles()
	reports := make([]ProfileReport, 0, len(profiles))
	for _, p := range profiles {
		reports = append(reports, ProfileReport{
			Summary: table.Summary(p),
			Monthly: table.MonthlyHours(p),
			Weekly:  table.WeeklyHours(p),
			Weekday: table.WeekdayPercent(p),
		})
	}

	return &Report{
		Records:    table.Len(),
		Preview:    rows,
		Profiles:   reports,
		Comparison: table.MonthlyComparison(),
	}
}

func (s *Service) record(ctx context.Context, m *ports.LoadMetrics) {
	if s.metrics == nil {
		return
	}
	if err := s.metrics.RecordLoad(ctx, m); err != nil {
		log.Debug().Err(err).Msg("Failed to record load metrics")
	}
}
