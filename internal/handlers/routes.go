package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Static files (served from embedded filesystem)
	if h.staticServer != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))
	}

	// Pages
	r.Get("/", h.handleAdminPage)
	r.Get("/admin", h.handleAdminPage)
	r.Get("/join", h.handleJoinPage)
	r.Get("/play", h.handlePlayPage)

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Player API
	r.Post("/api/player/join", h.handlePlayerJoin)
	r.Post("/api/player/answer", h.handlePlayerAnswer)
	r.Get("/api/player/status", h.handlePlayerStatus)

	// Host API
	r.Get("/api/players", h.handlePlayers)
	r.Get("/api/status", h.handleStatus)
	r.Get("/api/results", h.handleResults)
	r.Get("/api/leaderboard", h.handleLeaderboard)
	r.Get("/api/join-qr", h.handleJoinQR)
	r.Post("/api/start", h.handleStart)
	r.Post("/api/reveal_options", h.handleRevealOptions)
	r.Post("/api/show_answers", h.handleShowAnswers)
	r.Post("/api/show_leaderboard", h.handleShowLeaderboard)
	r.Post("/api/next", h.handleNext)
	r.Post("/api/previous", h.handlePrevious)
	r.Post("/api/reset", h.handleReset)
	r.Post("/api/quiz", h.handleSetQuiz)

	return r
}
