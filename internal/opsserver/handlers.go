package opsserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/udisondev/worldpvp/internal/data"
)

const readyTimeout = 2 * time.Second

// HealthResponse is the body of /healthz and /readyz.
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// LootSummaryResponse is the body of /loot/summary.
type LootSummaryResponse struct {
	Qualities []data.LootSummary `json:"qualities"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.loot.Load() == nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Reason: "loot tables not loaded"})
		return
	}

	if s.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := s.pinger.Ping(ctx); err != nil {
			slog.Warn("readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Reason: "database unreachable"})
			return
		}
	}

	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleLootSummary(w http.ResponseWriter, _ *http.Request) {
	t := s.loot.Load()
	if t == nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Reason: "loot tables not loaded"})
		return
	}
	respondJSON(w, http.StatusOK, LootSummaryResponse{Qualities: t.Summary()})
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
