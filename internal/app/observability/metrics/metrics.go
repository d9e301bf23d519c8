package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	HTTPRequestsTotal    metric.Int64Counter
	HTTPRequestDuration  metric.Float64Histogram
	QueriesTotal         metric.Int64Counter
	QueryDurationSeconds metric.Float64Histogram
	StreamEventsTotal    metric.Int64Counter
	StreamErrorsTotal    metric.Int64Counter
	ActiveSessionsGauge  metric.Int64Gauge
	PlanExportsTotal     metric.Int64Counter
	FunctionCallsTotal   metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("loci-maps")
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

		m.QueriesTotal, err = meter.Int64Counter(
			"explore_queries_total",
			metric.WithDescription("Total number of explore queries submitted"),
			metric.WithUnit("{query}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create explore_queries_total: %v", err)
		}

		m.QueryDurationSeconds, err = meter.Float64Histogram(
			"explore_query_duration_seconds",
			metric.WithDescription("End to end duration of an explore query stream in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create explore_query_duration_seconds: %v", err)
		}

		m.StreamEventsTotal, err = meter.Int64Counter(
			"stream_events_total",
			metric.WithDescription("Total number of map events emitted over SSE"),
			metric.WithUnit("{event}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create stream_events_total: %v", err)
		}

		m.StreamErrorsTotal, err = meter.Int64Counter(
			"stream_errors_total",
			metric.WithDescription("Total number of streams that ended in an error"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create stream_errors_total: %v", err)
		}

		m.ActiveSessionsGauge, err = meter.Int64Gauge(
			"active_sessions_current",
			metric.WithDescription("Current number of map sessions with live streams"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create active_sessions_current: %v", err)
		}

		m.PlanExportsTotal, err = meter.Int64Counter(
			"plan_exports_total",
			metric.WithDescription("Total number of day plan exports"),
			metric.WithUnit("{export}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_exports_total: %v", err)
		}

		m.FunctionCallsTotal, err = meter.Int64Counter(
			"model_function_calls_total",
			metric.WithDescription("Total number of function calls decoded from model responses"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create model_function_calls_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
