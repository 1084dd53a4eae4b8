// Package api exposes the pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adisuri/weekendwings/log"
	"github.com/adisuri/weekendwings/trip"
)

// PipelineRunner runs one full sequential pipeline pass
type PipelineRunner interface {
	Run(ctx context.Context) trip.FlightSearchResult
}

// AgentDriver runs the model-driven loop over the same three functions
type AgentDriver interface {
	Run(ctx context.Context, query string) (interface{}, error)
}

// defaultQuery is the canonical query handed to the agent driver
const defaultQuery = "Give me the flight details for cool destinations from my current location"

// Handler handles HTTP requests
type Handler struct {
	Pipeline PipelineRunner
	Agent    AgentDriver // nil when no LLM provider is configured
}

// NewHandler creates a new handler instance
func NewHandler(pipeline PipelineRunner, agent AgentDriver) *Handler {
	return &Handler{Pipeline: pipeline, Agent: agent}
}

// triggerResponse is the JSON body for a successful trigger
type triggerResponse struct {
	Status string `json:"status"`
	trip.FlightSearchResult
}

// Home handles GET / with liveness info
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "running",
		"message": "Flight Search API is running",
		"endpoints": map[string]string{
			"/api/trigger": "GET - Trigger flight search",
		},
	})
}

// Trigger handles GET /api/trigger. Query params: format=text|html renders
// the result instead of returning JSON; driver=agent routes through the
// model-driven loop when one is configured.
func (h *Handler) Trigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var result trip.FlightSearchResult
	if r.URL.Query().Get("driver") == "agent" && h.Agent != nil {
		result = h.runAgent(ctx)
	} else {
		result = h.Pipeline.Run(ctx)
	}

	switch trip.Format(r.URL.Query().Get("format")) {
	case trip.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(trip.Render(result, trip.FormatText)))
	case trip.FormatHTML:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(trip.Render(result, trip.FormatHTML)))
	default:
		writeJSON(w, http.StatusOK, triggerResponse{
			Status:             "success",
			FlightSearchResult: result,
		})
	}
}

// runAgent drives the loop and normalizes its result into a
// FlightSearchResult so every response path has the same shape.
func (h *Handler) runAgent(ctx context.Context) trip.FlightSearchResult {
	raw, err := h.Agent.Run(ctx, defaultQuery)
	if err != nil {
		log.Errorf(ctx, "agent run failed: %v", err)
		return trip.FlightSearchResult{Error: err.Error()}
	}

	switch v := raw.(type) {
	case trip.FlightSearchResult:
		return v
	case nil:
		return trip.FlightSearchResult{Error: "agent produced no result"}
	default:
		// Agent stopped on an intermediate step (location, forecast).
		return trip.FlightSearchResult{Error: "agent did not reach a flight search"}
	}
}

// NotFound is the fixed JSON 404 handler
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error":   "Not found",
		"message": "The requested URL was not found on the server.",
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf(context.Background(), "error encoding response: %v", err)
	}
}
