package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

func TestBuildPrompt_ContainsAllHeadingsInOrder(t *testing.T) {
	prompt := BuildPrompt(types.TripRequest{
		Destination: "Visakhapatnam, India",
		Days:        3,
		Budget:      "Medium",
	}, "Visakhapatnam", []string{"Kailasagiri"}, nil, nil, "")

	headings := []string{
		"## Day-wise Itinerary",
		"## Transport Plan",
		"## Estimated Budget Breakdown (INR)",
		"## Food Recommendations",
		"## Travel Tips",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(prompt, h)
		assert.Greater(t, idx, last, "heading %q missing or out of order", h)
		last = idx
	}
	assert.Contains(t, prompt, "Create a 3-day itinerary")
	assert.Contains(t, prompt, "- Kailasagiri")
}

func TestBuildPrompt_CurrencyDefaultsAndUppercases(t *testing.T) {
	prompt := BuildPrompt(types.TripRequest{Destination: "Goa", Days: 2, Currency: "usd"}, "Goa", nil, nil, nil, "")
	assert.Contains(t, prompt, "## Estimated Budget Breakdown (USD)")
	assert.Contains(t, prompt, "Currency to use for all costs: USD")

	prompt = BuildPrompt(types.TripRequest{Destination: "Goa", Days: 2}, "Goa", nil, nil, nil, "")
	assert.Contains(t, prompt, "## Estimated Budget Breakdown (INR)")
}

func TestBuildPrompt_MissingDataFallsBackToNotAvailable(t *testing.T) {
	prompt := BuildPrompt(types.TripRequest{Destination: "Goa", Days: 2}, "Goa", nil,
		map[types.CategoryLabel][]string{}, map[types.CategoryLabel][]string{}, "")

	assert.Contains(t, prompt, "Estimated travel time from departure: Not available")
	assert.Contains(t, prompt, "General attractions around Goa:\n- Not available")
	assert.Contains(t, prompt, "Departure city: Not specified")
	assert.Contains(t, prompt, "Interests: General")
}

func TestBuildPrompt_RendersBucketsInFixedOrder(t *testing.T) {
	cityCategories := map[types.CategoryLabel][]string{
		types.CategoryCulture: {"Submarine Museum"},
		types.CategoryBeaches: {"Rushikonda Beach"},
	}

	prompt := BuildPrompt(types.TripRequest{Destination: "Visakhapatnam", Days: 2},
		"Visakhapatnam", nil, cityCategories, nil, "")

	beachIdx := strings.Index(prompt, "Beaches:")
	cultureIdx := strings.Index(prompt, "Culture / History:")
	assert.Greater(t, beachIdx, -1)
	assert.Greater(t, cultureIdx, beachIdx)
	assert.Contains(t, prompt, "- Rushikonda Beach")
	assert.Contains(t, prompt, "- Submarine Museum")
}

func TestBuildPrompt_IncludesTravelTimeHint(t *testing.T) {
	prompt := BuildPrompt(types.TripRequest{Destination: "Goa", Departure: "Mumbai", Days: 2},
		"Goa", nil, nil, nil, "Train: approx 7.0-9.3 hours (distance ~420 km)")

	assert.Contains(t, prompt, "Estimated travel time from departure: Train: approx 7.0-9.3 hours (distance ~420 km)")
}
