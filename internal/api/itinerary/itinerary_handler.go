package itinerary

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-trip-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-itinerary/config"
	"github.com/FACorreiaa/go-trip-itinerary/internal/api"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

//go:embed templates/index.html
var templateFS embed.FS

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	Form(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	CreateItinerary(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	service        ItineraryService
	logger         *slog.Logger
	metrics        *metrics.AppMetrics
	page           *template.Template
	trustModelHTML bool
}

// pageData feeds templates/index.html. An empty Itinerary renders the bare form.
type pageData struct {
	Values    map[string]string
	Errors    map[string]string
	Itinerary template.HTML
}

func NewHandlerImpl(service ItineraryService, cfg config.ItineraryConfig, appMetrics *metrics.AppMetrics, logger *slog.Logger) (*HandlerImpl, error) {
	if logger == nil {
		return nil, errors.New("itinerary handler requires a logger")
	}
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse itinerary template: %w", err)
	}
	return &HandlerImpl{
		service:        service,
		logger:         logger,
		metrics:        appMetrics,
		page:           page,
		trustModelHTML: cfg.TrustModelHTML,
	}, nil
}

// Form renders the empty trip form.
func (h *HandlerImpl) Form(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Form", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/"),
	))
	defer span.End()

	h.render(w, r.WithContext(ctx), http.StatusOK, pageData{})
	span.SetStatus(codes.Ok, "Form rendered")
}

// Submit handles POST /: validate, generate, render the itinerary into the form page.
func (h *HandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Submit", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/"),
	))
	defer span.End()
	r = r.WithContext(ctx)

	l := h.logger.With(slog.String("handler", "Submit"))

	if err := r.ParseForm(); err != nil {
		l.WarnContext(ctx, "Failed to parse form", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bad form body")
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	values := submittedValues(r)
	req, err := ParseTripForm(r.PostForm)
	if err != nil {
		var verrs types.ValidationErrors
		if !errors.As(err, &verrs) {
			l.ErrorContext(ctx, "Unexpected form parsing error", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Form parsing failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		l.InfoContext(ctx, "Trip form rejected", slog.Any("fields", verrs.Names()))
		h.countValidationError(ctx, "form")
		span.SetStatus(codes.Error, "Validation failed")
		h.render(w, r, http.StatusBadRequest, pageData{Values: values, Errors: verrs.Fields()})
		return
	}

	itinerary, err := h.service.GenerateItinerary(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service error")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(
		attribute.String("app.itinerary.id", itinerary.ID.String()),
		attribute.Bool("app.itinerary.provider_failed", itinerary.ProviderFailed),
	)
	span.SetStatus(codes.Ok, "Itinerary rendered")
	h.render(w, r, http.StatusOK, pageData{
		Values:    values,
		Itinerary: ToHTML(itinerary.Text, h.trustModelHTML),
	})
}

// CreateItinerary godoc
// @Summary      Generate Itinerary
// @Description  Generates a day-by-day itinerary for the trip in the request body.
// @Tags         Itinerary
// @Accept       json
// @Produce      json
// @Param        trip body types.TripRequest true "Trip parameters"
// @Success      200 {object} types.ItineraryAPIResponse
// @Failure      400 {object} types.ValidationErrorResponse
// @Router       /api/v1/itineraries [post]
func (h *HandlerImpl) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "CreateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries"),
	))
	defer span.End()
	r = r.WithContext(ctx)

	l := h.logger.With(slog.String("handler", "CreateItinerary"))

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := ValidateTrip(req); err != nil {
		var verrs types.ValidationErrors
		if errors.As(err, &verrs) {
			h.countValidationError(ctx, "json")
			span.SetStatus(codes.Error, "Validation failed")
			api.ValidationResponse(w, r, verrs)
			return
		}
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := h.service.GenerateItinerary(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service error")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate itinerary")
		return
	}

	span.SetAttributes(attribute.String("app.itinerary.id", itinerary.ID.String()))
	span.SetStatus(codes.Ok, "Itinerary generated")
	api.WriteJSONResponse(w, r, http.StatusOK, types.ItineraryAPIResponse{
		ID:             itinerary.ID,
		Itinerary:      itinerary.Text,
		ItineraryHTML:  string(ToHTML(itinerary.Text, h.trustModelHTML)),
		ProviderFailed: itinerary.ProviderFailed,
		Model:          itinerary.Model,
		LatencyMs:      itinerary.Latency.Milliseconds(),
	})
}

func (h *HandlerImpl) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render itinerary page", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write itinerary page", slog.Any("error", err))
	}
}

func (h *HandlerImpl) countValidationError(ctx context.Context, surface string) {
	h.metrics.FormValidationErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("surface", surface)))
}

// submittedValues echoes the raw form back so a rejected form keeps its input.
func submittedValues(r *http.Request) map[string]string {
	values := make(map[string]string, 7)
	for _, field := range []string{fieldOrigin, fieldDestination, fieldDays, fieldBudget, fieldCuisine, fieldPeopleNumber, fieldInterests} {
		values[field] = r.PostForm.Get(field)
	}
	return values
}
