package types

// Coordinate is a geographic point produced by the geocoder.
// Latitude is in [-90,90], longitude in [-180,180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OverpassFeature matches a single element of an Overpass API response.
// Tags and name are optional; filtering is left to the classifier.
type OverpassFeature struct {
	ID   int64             `json:"id"`
	Type string            `json:"type"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// Name returns the display name tag, or "" when the feature is nameless.
func (f OverpassFeature) Name() string {
	if f.Tags == nil {
		return ""
	}
	return f.Tags["name"]
}

// TagPredicate selects features carrying a tag key, or key=value, within a
// radius. IncludeWays additionally emits a way clause (beaches are often
// mapped as ways rather than nodes).
type TagPredicate struct {
	Key         string
	Value       string
	IncludeWays bool
}

// CategoryLabel names a semantic bucket of classified places. The in-city and
// day-trip label sets are distinct classification schemes and are never
// derived from one another.
type CategoryLabel string

const (
	CategoryBeaches        CategoryLabel = "Beaches"
	CategoryHillsViewpoint CategoryLabel = "Hill Stations / Viewpoints"
	CategoryWaterfalls     CategoryLabel = "Waterfalls"
	CategoryAdventure      CategoryLabel = "Adventure / Fun"
	CategoryCulture        CategoryLabel = "Culture / History"

	DayTripHillNature      CategoryLabel = "Nearby Hill/Nature Trips"
	DayTripWaterfallNature CategoryLabel = "Nearby Waterfalls/Nature"
	DayTripBeaches         CategoryLabel = "Nearby Beaches"
	DayTripSpecial         CategoryLabel = "Special Places (Caves etc.)"
)

// CityCategoryOrder is the stable rendering order for in-city buckets. Maps
// do not preserve order, so prompt and UI layers iterate these slices.
var CityCategoryOrder = []CategoryLabel{
	CategoryBeaches,
	CategoryHillsViewpoint,
	CategoryWaterfalls,
	CategoryAdventure,
	CategoryCulture,
}

// DayTripCategoryOrder is the stable rendering order for day-trip buckets.
var DayTripCategoryOrder = []CategoryLabel{
	DayTripHillNature,
	DayTripWaterfallNature,
	DayTripBeaches,
	DayTripSpecial,
}

// TravelEstimate is a mode-dependent duration range in hours.
// LowHours <= HighHours always holds after formatting clamps.
type TravelEstimate struct {
	LowHours  float64 `json:"low_hours"`
	HighHours float64 `json:"high_hours"`
	Mode      string  `json:"mode"`
}
