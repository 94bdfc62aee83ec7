package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gameportal/internal/api/handler"
	"github.com/mcoot/gameportal/internal/api/middleware"
	"github.com/mcoot/gameportal/internal/services/portal"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Portal *portal.Portal
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.Portal)
	historyHandler := handler.NewHistoryHandler(cfg.Portal)
	gamesHandler := handler.NewGamesHandler(cfg.Portal)

	// Create middleware
	requireSession := middleware.RequireSession(cfg.Portal)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes (no session required)
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session", sessionHandler.Logout).Methods(http.MethodDelete)
	api.HandleFunc("/session/register", sessionHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/games", gamesHandler.List).Methods(http.MethodGet)

	// History routes (all require a session)
	history := api.PathPrefix("/history").Subrouter()
	history.Use(requireSession)
	history.HandleFunc("", historyHandler.Save).Methods(http.MethodPost)
	history.HandleFunc("", historyHandler.List).Methods(http.MethodGet)
	history.HandleFunc("", historyHandler.Clear).Methods(http.MethodDelete)
	history.HandleFunc("/stats", historyHandler.Stats).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
