package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	signupAttempts   metric.Int64Counter
	signupRecovered  metric.Int64Counter
	signupDuplicates metric.Int64Counter
	familiesCreated  metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "familia"
	}
	meter := provider.Meter(name)

	signupAttempts, err := meter.Int64Counter("familia_signup_attempts_total")
	if err != nil {
		return nil, err
	}
	signupRecovered, err := meter.Int64Counter("familia_signup_recovered_total")
	if err != nil {
		return nil, err
	}
	signupDuplicates, err := meter.Int64Counter("familia_signup_duplicates_total")
	if err != nil {
		return nil, err
	}
	familiesCreated, err := meter.Int64Counter("familia_families_created_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		signupAttempts:   signupAttempts,
		signupRecovered:  signupRecovered,
		signupDuplicates: signupDuplicates,
		familiesCreated:  familiesCreated,
	}, nil
}

// RecordSignupAttempt increments signup attempt counts by outcome.
func (m *Metrics) RecordSignupAttempt(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.signupAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", strings.TrimSpace(outcome)),
	))
}

// RecordSignupRecovered increments the partial-signup recovery count.
func (m *Metrics) RecordSignupRecovered(ctx context.Context) {
	if m == nil {
		return
	}
	m.signupRecovered.Add(ctx, 1)
}

// RecordSignupDuplicate increments the duplicate-signup rejection count.
func (m *Metrics) RecordSignupDuplicate(ctx context.Context) {
	if m == nil {
		return
	}
	m.signupDuplicates.Add(ctx, 1)
}

// RecordFamilyCreated increments the family creation count.
func (m *Metrics) RecordFamilyCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.familiesCreated.Add(ctx, 1)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}
