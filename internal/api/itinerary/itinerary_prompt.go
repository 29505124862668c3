package itinerary

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/types"
)

// BuildPrompt assembles the single travel-planner prompt from the collected
// place data. Every heading in the output contract is fixed; the model is
// told to fill missing sections with "Not available" rather than skip them.
func BuildPrompt(
	req types.TripRequest,
	city string,
	attractions []string,
	cityCategories map[types.CategoryLabel][]string,
	dayTrips map[types.CategoryLabel][]string,
	travelTimeHint string,
) string {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}

	interests := "General"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	if travelTimeHint == "" {
		travelTimeHint = "Not available"
	}

	var b strings.Builder
	b.WriteString("You are a professional travel planner.\n\n")
	fmt.Fprintf(&b, "Create a %d-day itinerary that is exciting, realistic, and not overloaded.\n\n", req.Days)

	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", orNotSpecified(req.Destination))
	fmt.Fprintf(&b, "- City: %s\n", orNotSpecified(city))
	fmt.Fprintf(&b, "- Departure city: %s\n", orNotSpecified(req.Departure))
	fmt.Fprintf(&b, "- Budget level: %s\n", req.Budget)
	fmt.Fprintf(&b, "- Travel type: %s\n", req.TravelType)
	fmt.Fprintf(&b, "- Transport preference: %s\n", req.TransportPref)
	fmt.Fprintf(&b, "- Estimated travel time from departure: %s\n", travelTimeHint)
	fmt.Fprintf(&b, "- Interests: %s\n", interests)
	fmt.Fprintf(&b, "- Currency to use for all costs: %s\n\n", currency)

	fmt.Fprintf(&b, "General attractions around %s:\n%s\n\n", city, formatList(attractions))
	fmt.Fprintf(&b, "CITY HIGHLIGHTS (within city / nearby):\n%s\n\n",
		formatSections(cityCategories, types.CityCategoryOrder))
	fmt.Fprintf(&b, "NEARBY DAY TRIPS (within ~150-200 km from %s):\n%s\n\n", city,
		formatSections(dayTrips, types.DayTripCategoryOrder))

	b.WriteString("IMPORTANT OUTPUT RULES:\n")
	b.WriteString("- You MUST include ALL headings below in the exact same order.\n")
	b.WriteString("- Do NOT skip any section.\n")
	b.WriteString("- If something is missing, write \"Not available\".\n")
	b.WriteString("- Include at least one nearby day trip if available.\n")
	b.WriteString("- Include beaches / hill stations / waterfalls / adventure / water parks if available.\n")
	b.WriteString("- Costs must be approximate and clearly mentioned as estimates.\n")
	fmt.Fprintf(&b, "- Use the currency: %s\n\n", currency)

	b.WriteString("Return the response with these Markdown headings:\n\n")
	b.WriteString("## Day-wise Itinerary\nDay 1:\nDay 2:\n...\n\n")
	b.WriteString("## Transport Plan\n")
	b.WriteString("- Inter-city travel (from departure city)\n")
	b.WriteString("- Local travel inside destination (auto/cab/metro/bus/rental)\n")
	b.WriteString("- Daily movement strategy\n\n")
	fmt.Fprintf(&b, "## Estimated Budget Breakdown (%s)\n", currency)
	b.WriteString("- Transport:\n- Stay:\n- Food:\n- Activities:\n- Total Estimated Range:\n\n")
	b.WriteString("## Food Recommendations\n")
	b.WriteString("- At least 5 local dishes\n")
	b.WriteString("- At least 3 recommended markets/areas/restaurants\n")
	b.WriteString("- Mention budget-friendly + premium options\n\n")
	b.WriteString("## Travel Tips\n")
	b.WriteString("- Best time to visit\n")
	b.WriteString("- Safety and crowd tips\n")
	b.WriteString("- Packing checklist\n")

	return strings.TrimSpace(b.String())
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "- Not available"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// formatSections renders buckets in their fixed label order, skipping empty
// ones; maps alone would give a non-deterministic prompt.
func formatSections(buckets map[types.CategoryLabel][]string, order []types.CategoryLabel) string {
	var lines []string
	for _, label := range order {
		places := buckets[label]
		if len(places) == 0 {
			continue
		}
		lines = append(lines, string(label)+":")
		for _, p := range places {
			lines = append(lines, "- "+p)
		}
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		return "Not available"
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
