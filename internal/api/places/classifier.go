package places

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

// Blacklist tables are split by concern so product can tune each
// independently. Matching is substring-based over the lower-cased name.
var (
	residentialBlacklist = []string{
		"nagar", "colony", "sector", "apartment", "residency", "complex",
		"society", "enclave", "layout",
	}
	administrativeBlacklist = []string{
		"corporation", "municipal", "office", "panchayat", "secretariat",
	}
	commercialBlacklist = []string{
		"hotel", "restaurant", "pg", "hostel", "lodge", "pvt", "private",
		"atm", "mall",
	}
	civicBlacklist = []string{
		"hospital", "clinic", "school", "college", "bank", "police",
		"court", "gym", "club", "tennis",
	}
)

// A bare generic word is not a useful place name on its own.
var genericNames = map[string]struct{}{
	"park":      {},
	"beach":     {},
	"museum":    {},
	"lake":      {},
	"viewpoint": {},
	"temple":    {},
	"church":    {},
}

var (
	// Tokens made purely of digits, punctuation and symbols.
	numericPunctRe = regexp.MustCompile(`^[\p{N}\p{P}\p{S}\s]+$`)
	// Characters a place name can structurally contain.
	validNameRe = regexp.MustCompile(`^[\p{L}\p{N}\s.,'&()/-]+$`)
)

// IsValidTouristPlace reports whether a raw OSM name looks like a real
// tourist destination rather than residential, commercial or civic noise.
func IsValidTouristPlace(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if utf8.RuneCountInString(n) < 4 {
		return false
	}
	if numericPunctRe.MatchString(n) {
		return false
	}
	if !validNameRe.MatchString(n) {
		return false
	}
	for _, table := range [][]string{residentialBlacklist, administrativeBlacklist, commercialBlacklist, civicBlacklist} {
		for _, word := range table {
			if strings.Contains(n, word) {
				return false
			}
		}
	}
	if _, generic := genericNames[n]; generic {
		return false
	}
	return true
}

// ClassifyCityFeature maps a tag set to an in-city category. Rules are
// priority-ordered; the first match wins. Features matching nothing are
// dropped by the caller.
//
// This table and ClassifyDayTripFeature evolved independently and must stay
// separate even where the tag logic looks similar.
func ClassifyCityFeature(tags map[string]string) (types.CategoryLabel, bool) {
	switch {
	case tags["natural"] == "beach":
		return types.CategoryBeaches, true
	case tags["tourism"] == "viewpoint" || tags["natural"] == "peak" || tags["natural"] == "hill":
		return types.CategoryHillsViewpoint, true
	case tags["waterway"] == "waterfall" || tags["natural"] == "waterfall":
		return types.CategoryWaterfalls, true
	case tags["leisure"] == "water_park" || tags["tourism"] == "theme_park" ||
		tags["tourism"] == "zoo" || tags["tourism"] == "attraction" || tags["leisure"] == "park":
		return types.CategoryAdventure, true
	case tags["historic"] != "" || tags["tourism"] == "museum" ||
		tags["tourism"] == "gallery" || tags["man_made"] == "lighthouse":
		return types.CategoryCulture, true
	default:
		return "", false
	}
}

// ClassifyDayTripFeature maps a tag set to a day-trip category, for the
// wider-radius excursion search. Same priority-order contract as the
// in-city table.
func ClassifyDayTripFeature(tags map[string]string) (types.CategoryLabel, bool) {
	switch {
	case tags["natural"] == "beach":
		return types.DayTripBeaches, true
	case tags["tourism"] == "viewpoint" || tags["natural"] == "peak" || tags["natural"] == "hill":
		return types.DayTripHillNature, true
	case tags["waterway"] == "waterfall" || tags["natural"] == "waterfall":
		return types.DayTripWaterfallNature, true
	case tags["natural"] == "cave_entrance" || tags["tourism"] == "attraction" || tags["historic"] != "":
		return types.DayTripSpecial, true
	default:
		return "", false
	}
}
