package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appMiddleware "github.com/FACorreiaa/go-trip-itinerary/app/middleware"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/itinerary"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler itinerary.Handler
	MaxFormBytes     int64
	AllowedOrigins   []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied
// before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	// HTML form
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.LimitBody(cfg.MaxFormBytes))
		r.Get("/", cfg.ItineraryHandler.Form)
		r.Post("/", cfg.ItineraryHandler.Submit)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           300, // Maximum value not ignored by any major browsers
		}))
		r.Post("/itineraries", cfg.ItineraryHandler.CreateItinerary)
	})

	return r
}
