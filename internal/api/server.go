// Package api provides the HTTP server for TrainQuest: a local REST API the
// companion app talks to, plus health and Prometheus endpoints.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trainquest/trainquest/internal/app/tracker"
	"github.com/trainquest/trainquest/internal/domain"
	"github.com/trainquest/trainquest/internal/health"
)

// Server is the TrainQuest HTTP API server.
type Server struct {
	tracker        *tracker.Service
	health         *health.Checker
	metricsEnabled bool
}

// NewServer creates an API server over the tracker.
func NewServer(t *tracker.Service) *Server {
	return &Server{tracker: t}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealth attaches the health checker to /health.
func (s *Server) SetHealth(h *health.Checker) { s.health = h }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/activities", s.handleListActivities)
		r.Get("/achievements/catalog", s.handleAchievementCatalog)
		r.Get("/skins", s.handleListSkins)

		r.Get("/children", s.handleListChildren)
		r.Post("/children", s.handleAddChild)

		r.Route("/children/{childID}", func(r chi.Router) {
			r.Get("/", s.handleGetChild)
			r.Get("/summary", s.handleSummary)
			r.Get("/sessions", s.handleListSessions)
			r.Post("/sessions", s.handleLogSession)
			r.Get("/map", s.handleMapNodes)
			r.Get("/map/current", s.handleCurrentNode)
			r.Get("/achievements", s.handleAchievements)
			r.Get("/wallets", s.handleWallets)
			r.Post("/gacha", s.handleGachaRoll)
			r.Post("/skins/{skinID}/purchase", s.handlePurchaseSkin)
			r.Get("/skins", s.handleOwnedSkins)
			r.Get("/buddy", s.handleGetBuddy)
			r.Post("/buddy/pet", s.handlePetBuddy)
			r.Post("/buddy/feed", s.handleFeedBuddy)
			r.Post("/buddy/skin", s.handleSetBuddySkin)
			r.Post("/treasure/open", s.handleOpenChest)
		})

		r.Post("/sessions/{sessionID}/complete", s.handleCompleteSession)
		r.Patch("/sessions/{sessionID}/note", s.handleEditNote)

		r.Get("/treasure", s.handleTreasure)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	status := http.StatusOK
	if !s.health.IsHealthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]interface{}{
		"healthy": s.health.IsHealthy(),
		"checks":  s.health.Statuses(),
	})
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// writeDomainError maps domain sentinels onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrChildNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSkinNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrSessionNotPlanned):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// corsMiddleware adds CORS headers for the local companion app.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
