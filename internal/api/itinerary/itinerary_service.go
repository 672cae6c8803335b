package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-trip-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

const (
	outcomeSuccess       = "success"
	outcomeProviderError = "provider_error"
	outcomeInvalid       = "invalid"
)

var _ ItineraryService = (*ItineraryServiceImpl)(nil)

// TextModel is the model client as seen by the service. Generate returns
// display text even when err is non-nil.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type ItineraryService interface {
	// GenerateItinerary builds the prompt for req and asks the model for an
	// itinerary. Provider failures are not returned as errors: the result has
	// ProviderFailed set and Text describes the failure.
	GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.Itinerary, error)
}

type ItineraryServiceImpl struct {
	logger  *slog.Logger
	model   TextModel
	metrics *metrics.AppMetrics
}

func NewItineraryService(model TextModel, appMetrics *metrics.AppMetrics, logger *slog.Logger) *ItineraryServiceImpl {
	return &ItineraryServiceImpl{
		logger:  logger,
		model:   model,
		metrics: appMetrics,
	}
}

func (s *ItineraryServiceImpl) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.Int("trip.days", req.Days),
		attribute.Int("trip.people", req.PeopleNumber),
	))
	defer span.End()

	start := time.Now()
	l := s.logger.With(slog.String("method", "GenerateItinerary"), slog.String("destination", req.Destination))

	prompt, err := BuildPrompt(req)
	if err != nil {
		l.WarnContext(ctx, "Rejected trip before prompt building", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid trip")
		s.countRequest(ctx, outcomeInvalid)
		return nil, fmt.Errorf("error building prompt: %w", err)
	}

	itinerary := &types.Itinerary{
		ID:     uuid.New(),
		Prompt: prompt,
		Model:  s.model.Model(),
	}
	span.SetAttributes(attribute.String("itinerary.id", itinerary.ID.String()))
	l = l.With(slog.String("itinerary_id", itinerary.ID.String()))
	l.DebugContext(ctx, "Requesting itinerary from model", slog.String("model", itinerary.Model))

	callStart := time.Now()
	text, callErr := s.model.Generate(ctx, prompt)
	itinerary.Latency = time.Since(callStart)
	itinerary.Text = text
	s.metrics.GenAICallDurationSeconds.Record(ctx, itinerary.Latency.Seconds())

	outcome := outcomeSuccess
	if callErr != nil {
		outcome = outcomeProviderError
		itinerary.ProviderFailed = true
		s.metrics.GenAICallErrorsTotal.Add(ctx, 1)
		l.ErrorContext(ctx, "Model call failed", slog.Any("error", callErr))
		span.RecordError(callErr)
		span.SetStatus(codes.Error, "Model call failed")
	} else {
		span.SetStatus(codes.Ok, "Itinerary generated")
	}

	s.countRequest(ctx, outcome)
	s.metrics.ItineraryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	l.InfoContext(ctx, "Itinerary request finished",
		slog.String("outcome", outcome),
		slog.Duration("latency", itinerary.Latency),
		slog.Int("text_length", len(text)))

	return itinerary, nil
}

func (s *ItineraryServiceImpl) countRequest(ctx context.Context, outcome string) {
	s.metrics.ItineraryRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
