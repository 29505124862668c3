package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/places"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/travel"
)

// Config contains the handlers needed for the router setup.
type Config struct {
	PlacesHandler    *places.Handler
	TravelHandler    *travel.Handler
	ItineraryHandler *itinerary.Handler
	MetricsHandler   http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied before
// mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/places", func(r chi.Router) {
			r.Get("/search", cfg.PlacesHandler.SearchCities)
			r.Get("/{city}/attractions", cfg.PlacesHandler.GetAttractions)
			r.Get("/{city}/categories", cfg.PlacesHandler.GetCityCategories)
			r.Get("/{city}/day-trips", cfg.PlacesHandler.GetNearbyDayTrips)
		})

		r.Get("/travel-time", cfg.TravelHandler.GetTravelTime)

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", cfg.ItineraryHandler.CreatePlan)
			r.Get("/{planID}", cfg.ItineraryHandler.GetPlan)
			r.Get("/{planID}/pdf", cfg.ItineraryHandler.DownloadPDF)
		})
	})

	return r
}
