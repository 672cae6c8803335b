package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/go-trip-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-itinerary/config"
	generativeAI "github.com/FACorreiaa/go-trip-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/itinerary"
	"github.com/FACorreiaa/go-trip-itinerary/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	Metrics          *metrics.AppMetrics
	AIClient         *generativeAI.AIClient
	ItineraryService itinerary.ItineraryService
	ItineraryHandler *itinerary.HandlerImpl
}

// NewContainer initializes and returns a new dependency container.
// It fails with types.ErrMissingAPIKey when no model credential is configured.
func NewContainer(ctx context.Context, cfg *config.Config, appMetrics *metrics.AppMetrics, logger *slog.Logger) (*Container, error) {
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.GenAI, logger)
	if err != nil {
		logger.Error("Failed to initialize generative AI client", slog.Any("error", err))
		return nil, err
	}

	modelClient := generativeAI.NewModelClient(aiClient, logger)
	itineraryService := itinerary.NewItineraryService(modelClient, appMetrics, logger)
	itineraryHandler, err := itinerary.NewHandlerImpl(itineraryService, cfg.Itinerary, appMetrics, logger)
	if err != nil {
		return nil, fmt.Errorf("error building itinerary handler: %w", err)
	}

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Metrics:          appMetrics,
		AIClient:         aiClient,
		ItineraryService: itineraryService,
		ItineraryHandler: itineraryHandler,
	}, nil
}

// RouterConfig wires the container's handlers into router.Config.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		ItineraryHandler: c.ItineraryHandler,
		MaxFormBytes:     c.Config.Itinerary.MaxFormBytes,
		AllowedOrigins:   c.Config.CORS.AllowedOrigins,
	}
}
