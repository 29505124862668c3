package places

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/geocode"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/overpass"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

const (
	DefaultAttractionLimit  = 12
	DefaultAttractionRadius = 20000
	WidenedAttractionRadius = 50000
	DefaultCityRadius       = 40000
	DefaultDayTripRadius    = 200000
	DefaultLimitEach        = 8
)

// Predicate sets for the three explorer views. Each set is sent as one
// batched Overpass query.
var (
	attractionPredicates = []types.TagPredicate{
		{Key: "tourism", Value: "attraction"},
		{Key: "tourism", Value: "museum"},
		{Key: "historic", Value: "monument"},
		{Key: "amenity", Value: "place_of_worship"},
		{Key: "leisure", Value: "park"},
	}

	cityPredicates = []types.TagPredicate{
		{Key: "natural", Value: "beach", IncludeWays: true},
		{Key: "tourism", Value: "viewpoint"},
		{Key: "natural", Value: "peak"},
		{Key: "natural", Value: "hill"},
		{Key: "waterway", Value: "waterfall"},
		{Key: "natural", Value: "waterfall"},
		{Key: "leisure", Value: "water_park"},
		{Key: "tourism", Value: "theme_park"},
		{Key: "tourism", Value: "zoo"},
		{Key: "tourism", Value: "attraction"},
		{Key: "leisure", Value: "park"},
		{Key: "historic"},
		{Key: "tourism", Value: "museum"},
		{Key: "tourism", Value: "gallery"},
		{Key: "man_made", Value: "lighthouse"},
	}

	dayTripPredicates = []types.TagPredicate{
		{Key: "natural", Value: "beach", IncludeWays: true},
		{Key: "natural", Value: "peak"},
		{Key: "natural", Value: "hill"},
		{Key: "tourism", Value: "viewpoint"},
		{Key: "waterway", Value: "waterfall"},
		{Key: "natural", Value: "waterfall"},
		{Key: "natural", Value: "cave_entrance"},
		{Key: "tourism", Value: "attraction"},
		{Key: "historic"},
	}
)

var _ Service = (*ServiceImpl)(nil)

// Service is the city explorer: it composes the geocoder, the feature query
// engine and the classifier into the three derived views. Geocoding failure
// yields the respective empty shape, never an error, so rendering code needs
// no not-found branch.
type Service interface {
	GetAttractions(ctx context.Context, city string, limit, radiusMeters int) []string
	GetCityCategories(ctx context.Context, city string, radiusMeters, limitEach int) map[types.CategoryLabel][]string
	GetNearbyDayTrips(ctx context.Context, city string, radiusMeters, limitEach int) map[types.CategoryLabel][]string
}

type ServiceImpl struct {
	logger   *slog.Logger
	geocoder geocode.Service
	overpass overpass.Service
}

func NewServiceImpl(geocoder geocode.Service, overpassSvc overpass.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		geocoder: geocoder,
		overpass: overpassSvc,
	}
}

// GetAttractions returns a flat, relevance-filtered, order-preserving list of
// attraction names capped at limit. Retrying with a wider radius on an empty
// result is deliberately the caller's policy, not this function's.
func (s *ServiceImpl) GetAttractions(ctx context.Context, city string, limit, radiusMeters int) []string {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "GetAttractions")
	defer span.End()
	span.SetAttributes(attribute.String("city", city), attribute.Int("radius_m", radiusMeters))

	coord, ok := s.geocoder.Geocode(ctx, city)
	if !ok {
		s.logger.DebugContext(ctx, "City could not be geocoded", slog.String("city", city))
		return []string{}
	}

	features := s.overpass.QueryFeatures(ctx, coord, radiusMeters, attractionPredicates)

	names := make([]string, 0, limit)
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		name := f.Name()
		if name == "" || seen[name] || !IsValidTouristPlace(name) {
			continue
		}
		seen[name] = true
		names = append(names, name)
		if len(names) == limit {
			break
		}
	}

	span.SetAttributes(attribute.Int("attractions.count", len(names)))
	return names
}

// GetCityCategories buckets in-city features by the in-city rule table.
// All five keys are always present, each possibly empty.
func (s *ServiceImpl) GetCityCategories(ctx context.Context, city string, radiusMeters, limitEach int) map[types.CategoryLabel][]string {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "GetCityCategories")
	defer span.End()
	span.SetAttributes(attribute.String("city", city), attribute.Int("radius_m", radiusMeters))

	buckets := emptyBuckets(types.CityCategoryOrder)

	coord, ok := s.geocoder.Geocode(ctx, city)
	if !ok {
		s.logger.DebugContext(ctx, "City could not be geocoded", slog.String("city", city))
		return buckets
	}

	features := s.overpass.QueryFeatures(ctx, coord, radiusMeters, cityPredicates)
	s.fillBuckets(buckets, features, limitEach, ClassifyCityFeature, types.CategoryBeaches)
	return buckets
}

// GetNearbyDayTrips buckets wider-radius features by the day-trip rule table.
// All four keys are always present, each possibly empty.
func (s *ServiceImpl) GetNearbyDayTrips(ctx context.Context, city string, radiusMeters, limitEach int) map[types.CategoryLabel][]string {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "GetNearbyDayTrips")
	defer span.End()
	span.SetAttributes(attribute.String("city", city), attribute.Int("radius_m", radiusMeters))

	buckets := emptyBuckets(types.DayTripCategoryOrder)

	coord, ok := s.geocoder.Geocode(ctx, city)
	if !ok {
		s.logger.DebugContext(ctx, "City could not be geocoded", slog.String("city", city))
		return buckets
	}

	features := s.overpass.QueryFeatures(ctx, coord, radiusMeters, dayTripPredicates)
	s.fillBuckets(buckets, features, limitEach, ClassifyDayTripFeature, types.DayTripBeaches)
	return buckets
}

// fillBuckets classifies features into buckets with stable, order-preserving
// per-bucket dedup. Beach features skip the relevance filter: the beach tag
// itself is sufficient evidence of validity even for short or generic names.
func (s *ServiceImpl) fillBuckets(
	buckets map[types.CategoryLabel][]string,
	features []types.OverpassFeature,
	limitEach int,
	classify func(map[string]string) (types.CategoryLabel, bool),
	beachLabel types.CategoryLabel,
) {
	if limitEach <= 0 {
		limitEach = DefaultLimitEach
	}

	seen := make(map[types.CategoryLabel]map[string]bool, len(buckets))
	for label := range buckets {
		seen[label] = make(map[string]bool)
	}

	for _, f := range features {
		name := f.Name()
		if name == "" {
			continue
		}
		label, ok := classify(f.Tags)
		if !ok {
			continue
		}
		if label != beachLabel && !IsValidTouristPlace(name) {
			continue
		}
		if seen[label][name] || len(buckets[label]) >= limitEach {
			continue
		}
		seen[label][name] = true
		buckets[label] = append(buckets[label], name)
	}
}

func emptyBuckets(labels []types.CategoryLabel) map[types.CategoryLabel][]string {
	buckets := make(map[types.CategoryLabel][]string, len(labels))
	for _, label := range labels {
		buckets[label] = []string{}
	}
	return buckets
}
