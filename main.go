package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/patrickmn/go-cache"

	appLogger "github.com/FACorreiaa/go-ai-travel-planner/app/logger"
	"github.com/FACorreiaa/go-ai-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-ai-travel-planner/app/tracer"
	"github.com/FACorreiaa/go-ai-travel-planner/config"
	generativeAI "github.com/FACorreiaa/go-ai-travel-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/geocode"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/overpass"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/places"
	"github.com/FACorreiaa/go-ai-travel-planner/internal/api/travel"
	api "github.com/FACorreiaa/go-ai-travel-planner/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	metricsHandler := tracer.InitTracingAndMetrics("AITravelPlanner")
	metrics.InitAppMetrics()

	// --- Caches (in-memory session state only, TTL-bounded) ---
	geoCache := cache.New(24*time.Hour, 1*time.Hour)
	planCache := cache.New(24*time.Hour, 1*time.Hour)

	// --- Dependency Injection ---
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.LLM.Model)
	if err != nil {
		logger.Error("Failed to initialize Gemini client", slog.Any("error", err))
		os.Exit(1)
	}

	geocodeService := geocode.NewServiceImpl(cfg.Nominatim.BaseURL, cfg.Nominatim.UserAgent, cfg.Nominatim.Timeout, geoCache, logger)
	overpassService := overpass.NewServiceImpl(cfg.Overpass.BaseURL, logger)
	placesService := places.NewServiceImpl(geocodeService, overpassService, logger)
	itineraryService := itinerary.NewServiceImpl(placesService, geocodeService, aiClient, planCache,
		cfg.LLM.MaxOutputTokens, cfg.LLM.Temperature, logger)

	placesHandler := places.NewPlacesHandler(placesService, geocodeService, logger)
	travelHandler := travel.NewTravelHandler(geocodeService, logger)
	itineraryHandler := itinerary.NewItineraryHandler(itineraryService, logger)

	// --- Router Setup ---
	mainRouter := api.SetupRouter(&api.Config{
		PlacesHandler:    placesHandler,
		TravelHandler:    travelHandler,
		ItineraryHandler: itineraryHandler,
		MetricsHandler:   metricsHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	// Plan generation waits on Overpass (up to 90s) plus the model call.
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Server.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
