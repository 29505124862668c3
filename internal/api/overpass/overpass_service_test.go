package overpass

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var center = types.Coordinate{Latitude: 17.6868, Longitude: 83.2185}

func TestQueryFeatures_DecodesElements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements":[
			{"type":"node","id":1,"lat":17.78,"lon":83.38,"tags":{"natural":"beach","name":"Rushikonda Beach"}},
			{"type":"node","id":2,"tags":{"tourism":"museum"}}
		]}`))
	}))
	defer server.Close()

	svc := NewServiceImpl(server.URL, testLogger())
	got := svc.QueryFeatures(context.Background(), center, 40000, []types.TagPredicate{{Key: "natural", Value: "beach"}})

	require.Len(t, got, 2)
	assert.Equal(t, "Rushikonda Beach", got[0].Name())
	assert.Equal(t, "", got[1].Name())
}

func TestQueryFeatures_BatchesAllPredicatesIntoOneCall(t *testing.T) {
	var calls atomic.Int64
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		query = r.URL.Query().Get("data")
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer server.Close()

	predicates := []types.TagPredicate{
		{Key: "natural", Value: "beach", IncludeWays: true},
		{Key: "tourism", Value: "viewpoint"},
		{Key: "historic"},
	}

	svc := NewServiceImpl(server.URL, testLogger())
	svc.QueryFeatures(context.Background(), center, 40000, predicates)

	assert.Equal(t, int64(1), calls.Load())
	assert.Contains(t, query, `node(around:40000`)
	assert.Contains(t, query, `["natural"="beach"]`)
	assert.Contains(t, query, `way(around:40000`)
	assert.Contains(t, query, `["tourism"="viewpoint"]`)
	assert.Contains(t, query, `["historic"]`)
	assert.Contains(t, query, "out tags;")
}

func TestQueryFeatures_DegradesToEmptyOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGatewayTimeout)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			svc := NewServiceImpl(server.URL, testLogger())
			got := svc.QueryFeatures(context.Background(), center, 40000, []types.TagPredicate{{Key: "historic"}})

			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestQueryFeatures_EmptyOnUnreachableEndpoint(t *testing.T) {
	svc := NewServiceImpl("http://127.0.0.1:1", testLogger())
	got := svc.QueryFeatures(context.Background(), center, 40000, []types.TagPredicate{{Key: "historic"}})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueryFeatures_NoPredicatesNoCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	svc := NewServiceImpl(server.URL, testLogger())
	got := svc.QueryFeatures(context.Background(), center, 40000, nil)

	assert.Empty(t, got)
	assert.Equal(t, int64(0), calls.Load())
}

func TestQueryTimeout_ScalesWithComplexity(t *testing.T) {
	assert.Equal(t, 60*time.Second, queryTimeout(20000, 1))
	assert.Equal(t, 80*time.Second, queryTimeout(40000, 15))
	assert.Equal(t, 90*time.Second, queryTimeout(200000, 9))
}

func TestBuildQuery_IncludesTimeoutHint(t *testing.T) {
	query := buildQuery(center, 20000, []types.TagPredicate{{Key: "historic"}}, 60*time.Second)
	assert.Contains(t, query, "[out:json][timeout:60];")
}
