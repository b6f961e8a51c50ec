package otel

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/streamstats/internal/ports"
)

const (
	serviceName    = "streamstats"
	serviceVersion = "1.0.0"
)

// Exporter exports load metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	loadsTotal   metric.Int64Counter
	failedTotal  metric.Int64Counter
	recordsTotal metric.Int64Counter
	durationHist metric.Float64Histogram
	profilesHist metric.Int64Histogram
}

// New returns an OTLP exporter when cfg enables one and a no-op exporter
// otherwise. Failing to build the OTLP exporter falls back to no-op.
func New(ctx context.Context, cfg Config) ports.MetricsExporter {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return NewNoOpExporter()
	}
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", cfg.Endpoint).Msg("OTEL exporter unavailable, metrics disabled")
		return NewNoOpExporter()
	}
	return exp
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newInstruments(provider)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func newInstruments(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	loadsTotal, err := meter.Int64Counter(
		"streamstats_loads_total",
		metric.WithDescription("Total number of exports loaded"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating loads counter: %w", err)
	}

	failedTotal, err := meter.Int64Counter(
		"streamstats_load_failures_total",
		metric.WithDescription("Total number of exports rejected"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failures counter: %w", err)
	}

	recordsTotal, err := meter.Int64Counter(
		"streamstats_records_total",
		metric.WithDescription("Total viewing records loaded"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating records counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"streamstats_load_duration_seconds",
		metric.WithDescription("Time spent parsing an export"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	profilesHist, err := meter.Int64Histogram(
		"streamstats_profiles",
		metric.WithDescription("Number of profiles per export"),
		metric.WithUnit("{profile}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating profiles histogram: %w", err)
	}

	return &Exporter{
		provider:     provider,
		loadsTotal:   loadsTotal,
		failedTotal:  failedTotal,
		recordsTotal: recordsTotal,
		durationHist: durationHist,
		profilesHist: profilesHist,
	}, nil
}

// RecordLoad records the outcome of one load.
func (e *Exporter) RecordLoad(ctx context.Context, m *ports.LoadMetrics) error {
	opt := metric.WithAttributes(attribute.String("source", m.Source))

	e.loadsTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, m.Duration.Seconds(), opt)

	if m.Failed() {
		e.failedTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("source", m.Source),
			attribute.String("kind", m.ErrorKind),
		))
		return nil
	}

	e.recordsTotal.Add(ctx, int64(m.Records), opt)
	e.profilesHist.Record(ctx, int64(m.Profiles), opt)
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
