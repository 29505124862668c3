package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-ai-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

const wideRadiusMeters = 100000

var _ Service = (*ServiceImpl)(nil)

// Service retrieves tagged geographic features within a radius. All requested
// predicates are combined into one batched Overpass call; issuing one call
// per predicate would blow the public endpoint's rate budget.
type Service interface {
	QueryFeatures(ctx context.Context, center types.Coordinate, radiusMeters int, predicates []types.TagPredicate) []types.OverpassFeature
}

type ServiceImpl struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
}

func NewServiceImpl(baseURL string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		client:  &http.Client{},
		baseURL: baseURL,
	}
}

type overpassResponse struct {
	Elements []types.OverpassFeature `json:"elements"`
}

// QueryFeatures returns raw, unfiltered, possibly nameless features.
// Every failure mode degrades to an empty slice so a failed lookup never
// blocks the rest of the pipeline.
func (s *ServiceImpl) QueryFeatures(ctx context.Context, center types.Coordinate, radiusMeters int, predicates []types.TagPredicate) []types.OverpassFeature {
	ctx, span := otel.Tracer("OverpassService").Start(ctx, "QueryFeatures")
	defer span.End()

	if len(predicates) == 0 {
		return []types.OverpassFeature{}
	}

	timeout := queryTimeout(radiusMeters, len(predicates))
	query := buildQuery(center, radiusMeters, predicates, timeout)
	span.SetAttributes(
		attribute.Int("overpass.radius_m", radiusMeters),
		attribute.Int("overpass.predicates", len(predicates)),
	)

	start := time.Now()
	features, err := s.execute(ctx, query, timeout)
	if m := metrics.Get(); m != nil {
		m.OverpassQueryDurationSecond.Record(ctx, time.Since(start).Seconds())
		if err != nil {
			m.OverpassQueryErrorsTotal.Add(ctx, 1)
		}
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Overpass query degraded to empty result",
			slog.Int("radius_m", radiusMeters),
			slog.Int("predicates", len(predicates)),
			slog.Any("error", err))
		span.SetStatus(codes.Error, "query failed")
		return []types.OverpassFeature{}
	}

	span.SetAttributes(attribute.Int("overpass.features", len(features)))
	return features
}

func (s *ServiceImpl) execute(ctx context.Context, query string, timeout time.Duration) ([]types.OverpassFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params := url.Values{}
	params.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build overpass request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}
	if decoded.Elements == nil {
		return []types.OverpassFeature{}, nil
	}
	return decoded.Elements, nil
}

// queryTimeout scales the budget with query complexity: the public Overpass
// endpoint's own processing time grows with radius and predicate count.
func queryTimeout(radiusMeters, predicateCount int) time.Duration {
	switch {
	case radiusMeters > wideRadiusMeters:
		return 90 * time.Second
	case predicateCount > 1:
		return 80 * time.Second
	default:
		return 60 * time.Second
	}
}

// buildQuery emits one Overpass QL union covering every predicate.
func buildQuery(center types.Coordinate, radiusMeters int, predicates []types.TagPredicate, timeout time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];(", int(timeout.Seconds()))
	for _, p := range predicates {
		writeClause(&b, "node", center, radiusMeters, p)
		if p.IncludeWays {
			writeClause(&b, "way", center, radiusMeters, p)
		}
	}
	b.WriteString(");out tags;")
	return b.String()
}

func writeClause(b *strings.Builder, element string, center types.Coordinate, radiusMeters int, p types.TagPredicate) {
	if p.Value == "" {
		fmt.Fprintf(b, "%s(around:%d,%f,%f)[%q];", element, radiusMeters, center.Latitude, center.Longitude, p.Key)
		return
	}
	fmt.Fprintf(b, "%s(around:%d,%f,%f)[%q=%q];", element, radiusMeters, center.Latitude, center.Longitude, p.Key, p.Value)
}
