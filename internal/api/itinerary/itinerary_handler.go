package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewItineraryHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// CreatePlan handles POST /plans - generates a travel plan from a trip request.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "CreatePlan")
	defer span.End()

	l := h.logger.With(slog.String("method", "CreatePlan"))

	var req types.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := h.service.CreatePlan(ctx, req)
	if err != nil {
		if errors.Is(err, ErrDestinationRequired) {
			l.WarnContext(ctx, "Destination missing from request")
			span.SetStatus(codes.Error, "Destination missing")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		l.ErrorContext(ctx, "Failed to create travel plan", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		http.Error(w, "Failed to generate travel plan", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		l.ErrorContext(ctx, "Failed to encode plan response", slog.Any("error", err))
		span.RecordError(err)
		return
	}

	l.InfoContext(ctx, "Travel plan created", slog.String("plan_id", plan.ID.String()))
	span.SetStatus(codes.Ok, "Plan created")
}

// GetPlan handles GET /plans/{planID} - returns a cached plan.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetPlan")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetPlan"))

	plan, ok := h.lookupPlan(w, r, l)
	if !ok {
		span.SetStatus(codes.Error, "Plan not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		l.ErrorContext(ctx, "Failed to encode plan response", slog.Any("error", err))
		span.RecordError(err)
		return
	}
	span.SetStatus(codes.Ok, "Plan returned")
}

// DownloadPDF handles GET /plans/{planID}/pdf - renders the plan as a PDF.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "DownloadPDF")
	defer span.End()

	l := h.logger.With(slog.String("method", "DownloadPDF"))

	plan, ok := h.lookupPlan(w, r, l)
	if !ok {
		span.SetStatus(codes.Error, "Plan not found")
		return
	}

	pdfBytes, err := GeneratePDF("AI Travel Plan - "+plan.City, plan.Content)
	if err != nil {
		l.ErrorContext(ctx, "Failed to render plan PDF", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "PDF rendering failed")
		http.Error(w, "Failed to render PDF", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("travel_plan_%s.pdf", strings.ToLower(strings.ReplaceAll(plan.City, " ", "_")))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(pdfBytes); err != nil {
		l.ErrorContext(ctx, "Failed to write PDF response", slog.Any("error", err))
		span.RecordError(err)
		return
	}
	span.SetStatus(codes.Ok, "PDF returned")
}

func (h *Handler) lookupPlan(w http.ResponseWriter, r *http.Request, l *slog.Logger) (*types.TravelPlan, bool) {
	planID, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		l.WarnContext(r.Context(), "Invalid plan ID", slog.Any("error", err))
		http.Error(w, "Invalid plan ID", http.StatusBadRequest)
		return nil, false
	}

	plan, found := h.service.GetPlan(r.Context(), planID)
	if !found {
		http.Error(w, "Plan not found or expired", http.StatusNotFound)
		return nil, false
	}
	return plan, true
}
