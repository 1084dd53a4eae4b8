// Package bootstrap wires the application components together.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/adisuri/weekendwings/agents"
	"github.com/adisuri/weekendwings/config"
	"github.com/adisuri/weekendwings/log"
	"github.com/adisuri/weekendwings/providers/aviationstack"
	"github.com/adisuri/weekendwings/providers/gemini"
	"github.com/adisuri/weekendwings/providers/geocode"
	"github.com/adisuri/weekendwings/providers/ipapi"
	"github.com/adisuri/weekendwings/providers/openai"
	"github.com/adisuri/weekendwings/providers/openmeteo"
	"github.com/adisuri/weekendwings/tools"
	"github.com/adisuri/weekendwings/trip"
)

// App holds the initialized components of the application
type App struct {
	Config   *config.Config
	Pipeline *trip.Pipeline
	Agent    *agents.Orchestrator // nil when AI plugin is off
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second

	resolver := &trip.Resolver{Locator: ipapi.NewClient(timeout)}

	// A missing maps key degrades the forecast to sample data rather than
	// failing startup.
	var geocoder trip.Geocoder
	if cfg.GoogleMaps.APIKey != "" {
		g, err := geocode.NewClient(cfg.GoogleMaps.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize geocoder: %w", err)
		}
		geocoder = g
	} else {
		log.Warnf(ctx, "GOOGLEMAPS_API_KEY not set, forecasts will use sample data")
	}

	forecast := &trip.ForecastFinder{
		Geocoder:   geocoder,
		Weather:    openmeteo.NewClient(timeout),
		HomeCity:   cfg.Trip.HomeCity,
		HomeRegion: cfg.Trip.HomeRegion,
	}

	if cfg.AviationStack.AccessKey == "" {
		log.Warnf(ctx, "AVIATIONSTACK_ACCESS_KEY not set, flight searches will report an error")
	}
	flights := &trip.FlightFinder{
		API: aviationstack.NewClient(cfg.AviationStack.AccessKey, timeout),
	}

	pipeline := &trip.Pipeline{
		Resolver: resolver,
		Forecast: forecast,
		Flights:  flights,
	}

	llm, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var agent *agents.Orchestrator
	if llm != nil {
		agent = &agents.Orchestrator{
			LLM: llm,
			NewRegistry: func() *tools.Registry {
				return tools.NewTripRegistry(resolver, forecast, flights)
			},
		}
	}

	return &App{
		Config:   cfg,
		Pipeline: pipeline,
		Agent:    agent,
	}, nil
}

// newLLMClient selects the completion provider per config. Returns nil when
// the agent driver is disabled.
func newLLMClient(ctx context.Context, cfg *config.Config) (agents.LLMClient, error) {
	switch cfg.AI.Plugin {
	case "gemini":
		if cfg.AI.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set (or set AI_PLUGIN=off)")
		}
		return gemini.NewClient(ctx, cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model)
	case "openai":
		if cfg.AI.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set (or set AI_PLUGIN=off)")
		}
		return openai.NewClient(cfg.AI.OpenAI.APIKey, cfg.AI.OpenAI.Model, cfg.AI.OpenAI.BaseURL)
	case "", "off":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown AI plugin %q", cfg.AI.Plugin)
	}
}
