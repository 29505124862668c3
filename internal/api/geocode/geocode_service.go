package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-ai-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

const (
	geocodeCacheTTL = 24 * time.Hour
	searchCacheTTL  = 1 * time.Hour
)

var _ Service = (*ServiceImpl)(nil)

// Service resolves free-text place names against Nominatim. Expected
// "not found" outcomes are signalled with the boolean, never an error;
// network and payload failures degrade to not-found as well.
type Service interface {
	Geocode(ctx context.Context, place string) (types.Coordinate, bool)
	SearchCities(ctx context.Context, query string, limit int) []string
}

type ServiceImpl struct {
	logger    *slog.Logger
	client    *http.Client
	baseURL   string
	userAgent string
	cache     *cache.Cache
	group     singleflight.Group
}

// NewServiceImpl creates a geocoding service. The cache is owned by the
// caller so tests and the app can share or replace it.
func NewServiceImpl(baseURL, userAgent string, timeout time.Duration, c *cache.Cache, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		cache:     c,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode resolves a place name to its best-match coordinate. The first
// Nominatim candidate is authoritative; no re-ranking. Results are cached
// for 24h keyed by the exact input string, and concurrent lookups of the
// same string share a single outbound call.
func (s *ServiceImpl) Geocode(ctx context.Context, place string) (types.Coordinate, bool) {
	ctx, span := otel.Tracer("GeocodeService").Start(ctx, "Geocode")
	defer span.End()

	if strings.TrimSpace(place) == "" {
		return types.Coordinate{}, false
	}

	cacheKey := "geocode:" + place
	if cached, found := s.cache.Get(cacheKey); found {
		if m := metrics.Get(); m != nil {
			m.GeocodeCacheHitsTotal.Add(ctx, 1)
		}
		if coord, ok := cached.(types.Coordinate); ok {
			return coord, true
		}
	}

	v, _, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		coord, ok := s.lookup(ctx, place)
		if !ok {
			return nil, nil
		}
		s.cache.Set(cacheKey, coord, geocodeCacheTTL)
		return coord, nil
	})

	span.SetAttributes(attribute.String("geocode.place", place), attribute.Bool("geocode.found", v != nil))
	coord, ok := v.(types.Coordinate)
	return coord, ok
}

func (s *ServiceImpl) lookup(ctx context.Context, place string) (types.Coordinate, bool) {
	results, err := s.search(ctx, place, 1, false)
	if err != nil {
		s.logger.WarnContext(ctx, "Geocoding lookup failed", slog.String("place", place), slog.Any("error", err))
		return types.Coordinate{}, false
	}
	if len(results) == 0 {
		return types.Coordinate{}, false
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		s.logger.WarnContext(ctx, "Geocoding returned unparsable coordinates", slog.String("place", place))
		return types.Coordinate{}, false
	}
	return types.Coordinate{Latitude: lat, Longitude: lon}, true
}

// SearchCities returns de-duplicated display names for autocomplete.
// Queries shorter than 2 characters never reach the network.
func (s *ServiceImpl) SearchCities(ctx context.Context, query string, limit int) []string {
	ctx, span := otel.Tracer("GeocodeService").Start(ctx, "SearchCities")
	defer span.End()

	if len(strings.TrimSpace(query)) < 2 {
		return []string{}
	}
	if limit <= 0 {
		limit = 8
	}

	cacheKey := fmt.Sprintf("search:%s:%d", query, limit)
	if cached, found := s.cache.Get(cacheKey); found {
		if names, ok := cached.([]string); ok {
			return names
		}
	}

	results, err := s.search(ctx, query, limit, true)
	if err != nil {
		s.logger.WarnContext(ctx, "City search failed", slog.String("query", query), slog.Any("error", err))
		span.SetStatus(codes.Error, "search failed")
		return []string{}
	}

	names := make([]string, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if r.DisplayName == "" || seen[r.DisplayName] {
			continue
		}
		seen[r.DisplayName] = true
		names = append(names, r.DisplayName)
	}

	s.cache.Set(cacheKey, names, searchCacheTTL)
	return names
}

func (s *ServiceImpl) search(ctx context.Context, query string, limit int, addressDetails bool) ([]nominatimResult, error) {
	if m := metrics.Get(); m != nil {
		m.GeocodeRequestsTotal.Add(ctx, 1)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	if addressDetails {
		params.Set("addressdetails", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	// Nominatim usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	return results, nil
}
