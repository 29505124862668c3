package places

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/geocode"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

// Hint surfaced when a lookup legitimately finds nothing. Not an error.
const noDataHint = "No data found. Try a bigger/nearby city name."

type Handler struct {
	logger   *slog.Logger
	service  Service
	geocoder geocode.Service
}

func NewPlacesHandler(service Service, geocoder geocode.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		geocoder: geocoder,
	}
}

// SearchCities handles GET /places/search?q= - destination autocomplete.
func (h *Handler) SearchCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlacesHandler").Start(r.Context(), "SearchCities")
	defer span.End()

	l := h.logger.With(slog.String("method", "SearchCities"))

	query := r.URL.Query().Get("q")
	limit := queryInt(r, "limit", 8)

	suggestions := h.geocoder.SearchCities(ctx, query, limit)

	l.InfoContext(ctx, "City search completed", slog.String("query", query), slog.Int("count", len(suggestions)))
	span.SetStatus(codes.Ok, "Suggestions returned")
	writeJSON(w, l, map[string]any{"suggestions": suggestions})
}

// GetAttractions handles GET /places/{city}/attractions.
func (h *Handler) GetAttractions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlacesHandler").Start(r.Context(), "GetAttractions")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetAttractions"))

	city := geocode.NormalizeCityName(chi.URLParam(r, "city"))
	limit := queryInt(r, "limit", DefaultAttractionLimit)
	radius := queryInt(r, "radius_m", DefaultAttractionRadius)

	attractions := h.service.GetAttractions(ctx, city, limit, radius)

	payload := map[string]any{"city": city, "attractions": attractions}
	if len(attractions) == 0 {
		payload["hint"] = noDataHint
	}

	l.InfoContext(ctx, "Attractions returned", slog.String("city", city), slog.Int("count", len(attractions)))
	span.SetStatus(codes.Ok, "Attractions returned")
	writeJSON(w, l, payload)
}

// GetCityCategories handles GET /places/{city}/categories.
func (h *Handler) GetCityCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlacesHandler").Start(r.Context(), "GetCityCategories")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetCityCategories"))

	city := geocode.NormalizeCityName(chi.URLParam(r, "city"))
	radius := queryInt(r, "radius_m", DefaultCityRadius)
	limitEach := queryInt(r, "limit_each", DefaultLimitEach)

	categories := h.service.GetCityCategories(ctx, city, radius, limitEach)

	payload := map[string]any{"city": city, "categories": categories}
	if bucketsEmpty(categories) {
		payload["hint"] = noDataHint
	}

	l.InfoContext(ctx, "City categories returned", slog.String("city", city))
	span.SetStatus(codes.Ok, "Categories returned")
	writeJSON(w, l, payload)
}

// GetNearbyDayTrips handles GET /places/{city}/day-trips.
func (h *Handler) GetNearbyDayTrips(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlacesHandler").Start(r.Context(), "GetNearbyDayTrips")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetNearbyDayTrips"))

	city := geocode.NormalizeCityName(chi.URLParam(r, "city"))
	radius := queryInt(r, "radius_m", DefaultDayTripRadius)
	limitEach := queryInt(r, "limit_each", DefaultLimitEach)

	dayTrips := h.service.GetNearbyDayTrips(ctx, city, radius, limitEach)

	payload := map[string]any{"city": city, "day_trips": dayTrips}
	if bucketsEmpty(dayTrips) {
		payload["hint"] = noDataHint
	}

	l.InfoContext(ctx, "Day trips returned", slog.String("city", city))
	span.SetStatus(codes.Ok, "Day trips returned")
	writeJSON(w, l, payload)
}

func bucketsEmpty(buckets map[types.CategoryLabel][]string) bool {
	for _, places := range buckets {
		if len(places) > 0 {
			return false
		}
	}
	return true
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func writeJSON(w http.ResponseWriter, l *slog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		l.Error("Failed to encode response", slog.Any("error", err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
