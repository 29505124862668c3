package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-ai-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/geocode"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/places"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/travel"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

const planCacheTTL = 24 * time.Hour

// ErrDestinationRequired is returned when the request carries no usable
// destination; handlers map it to a 400.
var ErrDestinationRequired = fmt.Errorf("destination must be at least 2 characters")

// Generator is the single-shot LLM call the plan service depends on.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

// Service generates travel plans and keeps them in an in-memory session
// cache until the TTL expires. Nothing is durably stored.
type Service interface {
	CreatePlan(ctx context.Context, req types.TripRequest) (*types.TravelPlan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*types.TravelPlan, bool)
}

type ServiceImpl struct {
	logger      *slog.Logger
	placesSvc   places.Service
	geocoder    geocode.Service
	generator   Generator
	planCache   *cache.Cache
	maxTokens   int32
	temperature float32
}

func NewServiceImpl(placesSvc places.Service, geocoder geocode.Service, generator Generator, planCache *cache.Cache, maxTokens int32, temperature float32, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		placesSvc:   placesSvc,
		geocoder:    geocoder,
		generator:   generator,
		planCache:   planCache,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// CreatePlan runs the whole pipeline: normalize the destination, collect
// real place data, assemble the prompt, call the model and cache the result.
func (s *ServiceImpl) CreatePlan(ctx context.Context, req types.TripRequest) (*types.TravelPlan, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "CreatePlan")
	defer span.End()

	start := time.Now()
	if m := metrics.Get(); m != nil {
		m.PlanRequestsTotal.Add(ctx, 1)
		defer func() {
			m.PlanDurationSeconds.Record(ctx, time.Since(start).Seconds())
		}()
	}

	city := geocode.NormalizeCityName(req.Destination)
	if len(strings.TrimSpace(city)) < 2 {
		span.SetStatus(codes.Error, "destination missing")
		return nil, ErrDestinationRequired
	}
	span.SetAttributes(attribute.String("city", city))

	if req.Days <= 0 {
		req.Days = 5
	}

	travelTimeHint := s.travelTimeHint(ctx, req.Departure, city, req.TransportPref)

	attractions := s.placesSvc.GetAttractions(ctx, city, places.DefaultAttractionLimit, places.DefaultAttractionRadius)
	if len(attractions) == 0 {
		// Dense data may sit just outside the default radius; widen once
		// before declaring "no data".
		attractions = s.placesSvc.GetAttractions(ctx, city, places.DefaultAttractionLimit, places.WidenedAttractionRadius)
	}

	cityCategories := s.placesSvc.GetCityCategories(ctx, city, places.DefaultCityRadius, places.DefaultLimitEach)
	dayTrips := s.placesSvc.GetNearbyDayTrips(ctx, city, places.DefaultDayTripRadius, places.DefaultLimitEach)

	prompt := BuildPrompt(req, city, attractions, cityCategories, dayTrips, travelTimeHint)

	temperature := req.Temperature
	if temperature <= 0 {
		temperature = s.temperature
	}
	content, err := s.generator.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		MaxOutputTokens: s.maxTokens,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Travel plan generation failed", slog.String("city", city), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return nil, fmt.Errorf("failed to generate travel plan: %w", err)
	}

	plan := &types.TravelPlan{
		ID:             uuid.New(),
		City:           city,
		Destination:    req.Destination,
		Content:        content,
		TravelTimeHint: travelTimeHint,
		CreatedAt:      time.Now().UTC(),
	}
	s.planCache.Set(plan.ID.String(), plan, planCacheTTL)

	s.logger.InfoContext(ctx, "Travel plan generated",
		slog.String("plan_id", plan.ID.String()),
		slog.String("city", city),
		slog.Int("attractions", len(attractions)))
	span.SetStatus(codes.Ok, "plan generated")
	return plan, nil
}

// GetPlan fetches a previously generated plan from the session cache.
func (s *ServiceImpl) GetPlan(ctx context.Context, id uuid.UUID) (*types.TravelPlan, bool) {
	_, span := otel.Tracer("ItineraryService").Start(ctx, "GetPlan")
	defer span.End()

	cached, found := s.planCache.Get(id.String())
	if !found {
		return nil, false
	}
	plan, ok := cached.(*types.TravelPlan)
	return plan, ok
}

// travelTimeHint estimates departure-to-destination travel time when both
// endpoints geocode; otherwise it stays empty and the prompt says so.
func (s *ServiceImpl) travelTimeHint(ctx context.Context, departure, city, transportPref string) string {
	if strings.TrimSpace(departure) == "" {
		return ""
	}

	depCoord, depOK := s.geocoder.Geocode(ctx, departure)
	destCoord, destOK := s.geocoder.Geocode(ctx, city)
	if !depOK || !destOK {
		return ""
	}

	distKm := travel.HaversineKm(depCoord.Latitude, depCoord.Longitude, destCoord.Latitude, destCoord.Longitude)
	estimate := travel.EstimateTravelTime(distKm, transportPref)
	return fmt.Sprintf("%s: approx %s (distance ~%.0f km)",
		estimate.Mode, travel.FormatHoursRange(estimate.LowHours, estimate.HighHours), distKm)
}
