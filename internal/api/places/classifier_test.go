package places

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

func TestIsValidTouristPlace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"real beach name", "Rushikonda Beach", true},
		{"real valley name", "Araku Valley", true},
		{"hospital is civic noise", "XYZ Hospital", false},
		{"too short", "ok", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"purely numeric", "12345", false},
		{"numeric and punctuation", "12-34!", false},
		{"structurally invalid characters", "Beach <script>", false},
		{"residential nagar", "Gandhi Nagar", false},
		{"residential colony", "Officers Colony", false},
		{"residential sector", "Sector 21", false},
		{"administrative corporation", "Municipal Corporation Building", false},
		{"commercial hotel", "Grand Hotel Plaza", false},
		{"commercial hostel", "Backpackers Hostel", false},
		{"civic school", "St Mary School", false},
		{"civic bank", "State Bank Branch", false},
		{"civic police", "Police Outpost", false},
		{"generic park", "Park", false},
		{"generic beach", "beach", false},
		{"generic museum", "Museum", false},
		{"generic temple", "Temple", false},
		{"named temple is fine", "Simhachalam Temple", true},
		{"named park is fine", "Kailasagiri Hill Park", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidTouristPlace(tc.input))
		})
	}
}

func TestClassifyCityFeature_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want types.CategoryLabel
		ok   bool
	}{
		{"beach", map[string]string{"natural": "beach"}, types.CategoryBeaches, true},
		{"viewpoint", map[string]string{"tourism": "viewpoint"}, types.CategoryHillsViewpoint, true},
		{"peak", map[string]string{"natural": "peak"}, types.CategoryHillsViewpoint, true},
		{"hill", map[string]string{"natural": "hill"}, types.CategoryHillsViewpoint, true},
		{"waterway waterfall", map[string]string{"waterway": "waterfall"}, types.CategoryWaterfalls, true},
		{"natural waterfall", map[string]string{"natural": "waterfall"}, types.CategoryWaterfalls, true},
		{"water park", map[string]string{"leisure": "water_park"}, types.CategoryAdventure, true},
		{"theme park", map[string]string{"tourism": "theme_park"}, types.CategoryAdventure, true},
		{"zoo", map[string]string{"tourism": "zoo"}, types.CategoryAdventure, true},
		{"attraction", map[string]string{"tourism": "attraction"}, types.CategoryAdventure, true},
		{"park", map[string]string{"leisure": "park"}, types.CategoryAdventure, true},
		{"historic anything", map[string]string{"historic": "fort"}, types.CategoryCulture, true},
		{"museum", map[string]string{"tourism": "museum"}, types.CategoryCulture, true},
		{"gallery", map[string]string{"tourism": "gallery"}, types.CategoryCulture, true},
		{"lighthouse", map[string]string{"man_made": "lighthouse"}, types.CategoryCulture, true},
		{"unmatched tags dropped", map[string]string{"amenity": "parking"}, "", false},
		{"nil tags dropped", nil, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClassifyCityFeature(tc.tags)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyCityFeature_FirstMatchWins(t *testing.T) {
	// A beach that is also a viewpoint stays a beach.
	label, ok := ClassifyCityFeature(map[string]string{"natural": "beach", "tourism": "viewpoint"})
	assert.True(t, ok)
	assert.Equal(t, types.CategoryBeaches, label)

	// A historic viewpoint classifies as viewpoint, not culture.
	label, ok = ClassifyCityFeature(map[string]string{"tourism": "viewpoint", "historic": "yes"})
	assert.True(t, ok)
	assert.Equal(t, types.CategoryHillsViewpoint, label)
}

func TestClassifyDayTripFeature(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want types.CategoryLabel
		ok   bool
	}{
		{"beach", map[string]string{"natural": "beach"}, types.DayTripBeaches, true},
		{"peak", map[string]string{"natural": "peak"}, types.DayTripHillNature, true},
		{"viewpoint", map[string]string{"tourism": "viewpoint"}, types.DayTripHillNature, true},
		{"waterfall", map[string]string{"waterway": "waterfall"}, types.DayTripWaterfallNature, true},
		{"cave", map[string]string{"natural": "cave_entrance"}, types.DayTripSpecial, true},
		{"attraction", map[string]string{"tourism": "attraction"}, types.DayTripSpecial, true},
		{"historic", map[string]string{"historic": "monument"}, types.DayTripSpecial, true},
		{"village not classified", map[string]string{"place": "village"}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClassifyDayTripFeature(tc.tags)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifySchemesStayIndependent(t *testing.T) {
	// tourism=zoo is adventure in the city scheme but nothing on a day trip.
	_, cityOK := ClassifyCityFeature(map[string]string{"tourism": "zoo"})
	_, tripOK := ClassifyDayTripFeature(map[string]string{"tourism": "zoo"})
	assert.True(t, cityOK)
	assert.False(t, tripOK)

	// caves only exist in the day-trip scheme.
	_, cityOK = ClassifyCityFeature(map[string]string{"natural": "cave_entrance"})
	_, tripOK = ClassifyDayTripFeature(map[string]string{"natural": "cave_entrance"})
	assert.False(t, cityOK)
	assert.True(t, tripOK)
}
