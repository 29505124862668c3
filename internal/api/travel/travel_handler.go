package travel

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/geocode"
)

type Handler struct {
	logger   *slog.Logger
	geocoder geocode.Service
}

func NewTravelHandler(geocoder geocode.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		geocoder: geocoder,
	}
}

type travelTimeResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
	Mode       string  `json:"mode"`
	LowHours   float64 `json:"low_hours"`
	HighHours  float64 `json:"high_hours"`
	Formatted  string  `json:"formatted"`
}

// GetTravelTime handles GET /travel-time?from=&to=&mode= - estimates the
// door-to-door duration range between two cities.
func (h *Handler) GetTravelTime(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TravelHandler").Start(r.Context(), "GetTravelTime")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetTravelTime"))

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	mode := r.URL.Query().Get("mode")

	if from == "" || to == "" {
		l.WarnContext(ctx, "Missing from/to parameters")
		span.SetStatus(codes.Error, "Missing parameters")
		http.Error(w, "Both 'from' and 'to' query parameters are required", http.StatusBadRequest)
		return
	}

	fromCoord, fromOK := h.geocoder.Geocode(ctx, from)
	toCoord, toOK := h.geocoder.Geocode(ctx, to)
	if !fromOK || !toOK {
		l.InfoContext(ctx, "Travel time endpoints could not be geocoded",
			slog.String("from", from), slog.String("to", to))
		span.SetStatus(codes.Error, "City not found")
		http.Error(w, "One or both cities could not be found; try a nearby bigger city", http.StatusNotFound)
		return
	}

	distKm := HaversineKm(fromCoord.Latitude, fromCoord.Longitude, toCoord.Latitude, toCoord.Longitude)
	estimate := EstimateTravelTime(distKm, mode)

	resp := travelTimeResponse{
		From:       from,
		To:         to,
		DistanceKm: distKm,
		Mode:       estimate.Mode,
		LowHours:   estimate.LowHours,
		HighHours:  estimate.HighHours,
		Formatted:  FormatHoursRange(estimate.LowHours, estimate.HighHours),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		l.ErrorContext(ctx, "Failed to encode travel time response", slog.Any("error", err))
		span.RecordError(err)
		return
	}

	l.InfoContext(ctx, "Travel time estimated", slog.Float64("distance_km", distKm), slog.String("mode", estimate.Mode))
	span.SetStatus(codes.Ok, "Travel time returned")
}
