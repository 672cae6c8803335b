package types

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is the outcome of one generation call.
type Itinerary struct {
	ID     uuid.UUID
	Prompt string
	// Text is the model output, or the provider error rendered as text.
	Text           string
	ProviderFailed bool
	Model          string
	Latency        time.Duration
}

// ItineraryAPIResponse is the JSON body returned by POST /api/v1/itineraries.
type ItineraryAPIResponse struct {
	ID             uuid.UUID `json:"id"`
	Itinerary      string    `json:"itinerary"`
	ItineraryHTML  string    `json:"itinerary_html"`
	ProviderFailed bool      `json:"provider_failed"`
	Model          string    `json:"model"`
	LatencyMs      int64     `json:"latency_ms"`
}

// ValidationErrorResponse is returned when a submission fails validation.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}
