package metrics

import (
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ItineraryRequestsTotal    metric.Int64Counter
	ItineraryDurationSeconds  metric.Float64Histogram
	GenAICallDurationSeconds  metric.Float64Histogram
	GenAICallErrorsTotal      metric.Int64Counter
	FormValidationErrorsTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// New creates the instruments on the given meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.ItineraryRequestsTotal, err = meter.Int64Counter(
		"itinerary_requests_total",
		metric.WithDescription("Total number of itinerary generation requests, by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("itinerary_requests_total: %w", err)
	}

	m.ItineraryDurationSeconds, err = meter.Float64Histogram(
		"itinerary_duration_seconds",
		metric.WithDescription("End-to-end duration of itinerary generation in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("itinerary_duration_seconds: %w", err)
	}

	m.GenAICallDurationSeconds, err = meter.Float64Histogram(
		"genai_call_duration_seconds",
		metric.WithDescription("Duration of generative model calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("genai_call_duration_seconds: %w", err)
	}

	m.GenAICallErrorsTotal, err = meter.Int64Counter(
		"genai_call_errors_total",
		metric.WithDescription("Total number of failed generative model calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("genai_call_errors_total: %w", err)
	}

	m.FormValidationErrorsTotal, err = meter.Int64Counter(
		"form_validation_errors_total",
		metric.WithDescription("Total number of rejected trip submissions"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("form_validation_errors_total: %w", err)
	}

	return m, nil
}

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		m, err := New(otel.GetMeterProvider().Meter("TripItinerary"))
		if err != nil {
			log.Fatalf("Metrics: %v", err)
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
