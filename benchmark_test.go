package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/metric/noop"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-trip-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-itinerary/config"
	generativeAI "github.com/FACorreiaa/go-trip-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api/itinerary"
	"github.com/FACorreiaa/go-trip-itinerary/internal/router"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) Model() string {
	return "gemini-1.5-flash"
}

// setupBenchmarkRouter builds the full HTTP stack over a mocked model.
func setupBenchmarkRouter(b *testing.B) http.Handler {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))

	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(strings.Repeat("**Day 1:**\n- Morning: Louvre\n- Evening: Seine cruise\n", 3), nil)

	appMetrics, err := metrics.New(noop.NewMeterProvider().Meter("bench"))
	if err != nil {
		b.Fatal(err)
	}
	service := itinerary.NewItineraryService(generativeAI.NewModelClient(gen, logger), appMetrics, logger)
	handler, err := itinerary.NewHandlerImpl(service, config.ItineraryConfig{}, appMetrics, logger)
	if err != nil {
		b.Fatal(err)
	}

	return newAppRouter(&router.Config{
		ItineraryHandler: handler,
		MaxFormBytes:     65536,
	}, 30*time.Second, logger)
}

func BenchmarkFormPage(b *testing.B) {
	r := setupBenchmarkRouter(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}

func BenchmarkFormSubmission(b *testing.B) {
	r := setupBenchmarkRouter(b)
	form := url.Values{
		"destination":        {"Paris"},
		"days":               {"3"},
		"budget":             {"900"},
		"cuisine_preference": {"Italian"},
		"people_number":      {"3"},
		"interests":          {"art"},
	}.Encode()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}

func BenchmarkJSONItinerary(b *testing.B) {
	r := setupBenchmarkRouter(b)
	body := `{"destination":"Paris","days":3,"budget":900,"cuisine_preference":"Italian","people_number":3,"interests":"art"}`

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				b.Errorf("unexpected status %d", rec.Code)
			}
		}
	})
}
