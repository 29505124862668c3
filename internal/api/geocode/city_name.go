package geocode

import "strings"

// Administrative words that leak into Nominatim display names but are not
// part of the city name itself. Both casings are listed on purpose; the
// replacement is case-sensitive per variant.
var cityNoiseWords = []string{
	"Corporation", "corporation",
	"Municipality", "municipality",
	"District", "district",
	"Division", "division",
	"Region", "region",
	"Metropolitan", "metropolitan",
}

// NormalizeCityName extracts the city from a "City, District, State, Country"
// display string: first comma segment, administrative noise stripped,
// whitespace collapsed. Total function; empty input yields "".
func NormalizeCityName(fullLocation string) string {
	if fullLocation == "" {
		return ""
	}

	city := fullLocation
	if idx := strings.Index(city, ","); idx >= 0 {
		city = city[:idx]
	}

	for _, word := range cityNoiseWords {
		city = strings.ReplaceAll(city, word, "")
	}

	return strings.Join(strings.Fields(city), " ")
}
