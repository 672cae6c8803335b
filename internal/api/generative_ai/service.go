package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-trip-itinerary/config"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// ErrEmptyResponse is returned when the model answers without any text,
// e.g. when the candidate was blocked.
var ErrEmptyResponse = errors.New("model returned no text")

var _ Generator = (*AIClient)(nil)

// Generator performs a single blocking text generation call.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
	Model() string
}

type AIClient struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
	logger      *slog.Logger
}

// NewAIClient builds the Gemini client once at startup. It fails with
// types.ErrMissingAPIKey when no key is configured.
func NewAIClient(ctx context.Context, cfg config.GenAIConfig, logger *slog.Logger) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	if cfg.APIKey == "" {
		span.RecordError(types.ErrMissingAPIKey)
		span.SetStatus(codes.Error, "API key not set")
		return nil, types.ErrMissingAPIKey
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	logger.InfoContext(ctx, "Gemini client initialised",
		slog.String("model", cfg.Model),
		slog.Duration("timeout", cfg.Timeout))
	span.SetStatus(codes.Ok, "AI client created successfully")
	return &AIClient{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		logger:      logger,
	}, nil
}

func (ai *AIClient) Model() string {
	return ai.model
}

// GenerateContent sends prompt to the model and returns its text. A nil
// config uses the configured temperature.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	if config == nil {
		config = &genai.GenerateContentConfig{Temperature: genai.Ptr(ai.temperature)}
	}
	// zero timeout leaves the call bounded only by ctx
	if ai.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ai.timeout)
		defer cancel()
	}

	l := ai.logger.With(slog.String("method", "GenerateContent"), slog.String("model", ai.model))
	l.DebugContext(ctx, "Calling Gemini", slog.Int("prompt_length", len(prompt)))

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "GenerateContent failed")
		return "", err
	}

	text := result.Text()
	if text == "" {
		span.RecordError(ErrEmptyResponse)
		span.SetStatus(codes.Error, "Empty response")
		return "", ErrEmptyResponse
	}

	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "Content generated")
	return text, nil
}
