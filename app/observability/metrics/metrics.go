package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	GeocodeRequestsTotal        metric.Int64Counter
	GeocodeCacheHitsTotal       metric.Int64Counter
	OverpassQueryDurationSecond metric.Float64Histogram
	OverpassQueryErrorsTotal    metric.Int64Counter
	PlanRequestsTotal           metric.Int64Counter
	PlanDurationSeconds         metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments only once,
// using the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("AITravelPlanner")
		var err error
		m := &AppMetrics{}

		m.GeocodeRequestsTotal, err = meter.Int64Counter(
			"geocode_requests_total",
			metric.WithDescription("Total number of outbound geocoding lookups"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_requests_total: %v", err)
		}

		m.GeocodeCacheHitsTotal, err = meter.Int64Counter(
			"geocode_cache_hits_total",
			metric.WithDescription("Geocoding lookups answered from cache"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_cache_hits_total: %v", err)
		}

		m.OverpassQueryDurationSecond, err = meter.Float64Histogram(
			"overpass_query_duration_seconds",
			metric.WithDescription("Duration of Overpass feature queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create overpass_query_duration_seconds: %v", err)
		}

		m.OverpassQueryErrorsTotal, err = meter.Int64Counter(
			"overpass_query_errors_total",
			metric.WithDescription("Overpass queries degraded to an empty result"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create overpass_query_errors_total: %v", err)
		}

		m.PlanRequestsTotal, err = meter.Int64Counter(
			"plan_requests_total",
			metric.WithDescription("Total number of travel plan generations"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_requests_total: %v", err)
		}

		m.PlanDurationSeconds, err = meter.Float64Histogram(
			"plan_duration_seconds",
			metric.WithDescription("End-to-end duration of travel plan generation"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_duration_seconds: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance, or nil when
// InitAppMetrics was not called (unit tests construct services directly).
func Get() *AppMetrics {
	return appMetrics
}
