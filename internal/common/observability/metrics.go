package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability owns the OpenTelemetry metric pipeline. Instruments are
// exported through the shared Prometheus registry, so they show up on the
// same /metrics endpoint as the promauto counters.
type Observability struct {
	meterProvider   *metric.MeterProvider
	meter           otelmetric.Meter
	catalogLoads    otelmetric.Int64Counter
	catalogDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	catalogLoads, _ := meter.Int64Counter(
		"catalog.loads",
		otelmetric.WithDescription("Number of catalog load attempts"),
	)

	catalogDuration, _ := meter.Float64Histogram(
		"catalog.load.duration",
		otelmetric.WithDescription("Catalog load duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:   provider,
		meter:           meter,
		catalogLoads:    catalogLoads,
		catalogDuration: catalogDuration,
	}
}

// RecordCatalogLoad records one catalog load attempt.
func (o *Observability) RecordCatalogLoad(ctx context.Context, duration time.Duration, status string) {
	if o.catalogLoads != nil {
		o.catalogLoads.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
	if o.catalogDuration != nil {
		o.catalogDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
