package travel

import (
	"fmt"
	"math"
	"strings"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

const earthRadiusKm = 6371.0

// Distances under this threshold are planned as ground trips when the user
// has no transport preference. Design constant, not user-configurable.
const autoFlightThresholdKm = 250.0

// HaversineKm calculates the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EstimateTravelTime turns a distance into a mode-dependent duration range.
// The flight formulas include a fixed 2-3h airport overhead on top of pure
// flight time. An unrecognized or "Any" preference auto-selects by distance.
func EstimateTravelTime(distanceKm float64, modePreference string) types.TravelEstimate {
	switch strings.ToLower(strings.TrimSpace(modePreference)) {
	case "train":
		return types.TravelEstimate{LowHours: distanceKm / 60, HighHours: distanceKm / 45, Mode: "Train"}
	case "bus":
		return types.TravelEstimate{LowHours: distanceKm / 50, HighHours: distanceKm / 35, Mode: "Bus"}
	case "flight":
		flightHours := distanceKm / 750
		return types.TravelEstimate{LowHours: flightHours + 2.0, HighHours: flightHours + 3.0, Mode: "Flight"}
	}

	if distanceKm < autoFlightThresholdKm {
		return types.TravelEstimate{LowHours: distanceKm / 60, HighHours: distanceKm / 45, Mode: "Train/Car"}
	}
	flightHours := distanceKm / 750
	return types.TravelEstimate{LowHours: flightHours + 2.0, HighHours: flightHours + 3.0, Mode: "Flight/Train"}
}

// FormatHoursRange renders a duration range, clamping low to at least half an
// hour and high to at least low.
func FormatHoursRange(low, high float64) string {
	low = math.Max(0.5, low)
	high = math.Max(low, high)
	return fmt.Sprintf("%.1f-%.1f hours", low, high)
}
