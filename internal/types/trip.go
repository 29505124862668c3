package types

import (
	"time"

	"github.com/google/uuid"
)

// TripRequest is the expected JSON body for creating a travel plan.
type TripRequest struct {
	Destination   string   `json:"destination" example:"Visakhapatnam, Andhra Pradesh, India"` // Full destination string, typically picked from search suggestions.
	Departure     string   `json:"departure,omitempty" example:"Bhubaneswar"`                  // Optional departure city for the travel-time hint.
	Days          int      `json:"days" example:"5"`
	Budget        string   `json:"budget" example:"Medium"` // Low / Medium / High
	Currency      string   `json:"currency" example:"INR"`
	TravelType    string   `json:"travel_type" example:"Family"`                  // Solo / Family / Friends
	TransportPref string   `json:"transport_pref,omitempty" example:"Train"`      // Any / Flight / Train / Bus
	Interests     []string `json:"interests,omitempty" example:"Nature,Culture"`
	Temperature   float32  `json:"temperature,omitempty" example:"0.7"` // LLM sampling temperature.
}

// TravelPlan is a generated itinerary held in the in-memory session cache
// until its TTL expires; nothing is durably stored.
type TravelPlan struct {
	ID             uuid.UUID `json:"id"`
	City           string    `json:"city"`
	Destination    string    `json:"destination"`
	Content        string    `json:"content"` // Markdown itinerary text from the model.
	TravelTimeHint string    `json:"travel_time_hint,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
