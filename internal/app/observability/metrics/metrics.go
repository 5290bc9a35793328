package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the guide's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal      metric.Int64Counter
	HTTPRequestDuration    metric.Float64Histogram
	SearchRequestsTotal    metric.Int64Counter
	SearchDuration         metric.Float64Histogram
	ParseOutcomesTotal     metric.Int64Counter
	MapMovesTotal          metric.Int64Counter
	LocationEventsTotal    metric.Int64Counter
	ActiveSessions         metric.Int64UpDownCounter
	TemplateRenderDuration metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments against the global MeterProvider.
// Call it after the provider is installed; later calls are no-ops.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("namma-guide")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.SearchRequestsTotal, err = meter.Int64Counter(
			"search_requests_total",
			metric.WithDescription("Recommendation searches by trigger and outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create search_requests_total: %v", err)
		}

		m.SearchDuration, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Duration of grounded model calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create search_duration_seconds: %v", err)
		}

		m.ParseOutcomesTotal, err = meter.Int64Counter(
			"place_parse_outcomes_total",
			metric.WithDescription("Structured place block parse outcomes"),
			metric.WithUnit("{response}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create place_parse_outcomes_total: %v", err)
		}

		m.MapMovesTotal, err = meter.Int64Counter(
			"map_moves_total",
			metric.WithDescription("Map pan and zoom notifications"),
			metric.WithUnit("{event}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create map_moves_total: %v", err)
		}

		m.LocationEventsTotal, err = meter.Int64Counter(
			"location_events_total",
			metric.WithDescription("Device location transitions by status"),
			metric.WithUnit("{event}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create location_events_total: %v", err)
		}

		m.ActiveSessions, err = meter.Int64UpDownCounter(
			"active_sessions_current",
			metric.WithDescription("Current number of live guide sessions"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create active_sessions_current: %v", err)
		}

		m.TemplateRenderDuration, err = meter.Float64Histogram(
			"template_render_duration_seconds",
			metric.WithDescription("Duration of template rendering in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create template_render_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, creating them on first use. Before a real
// provider is installed they are bound to the no-op provider, which keeps
// tests free of setup.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
