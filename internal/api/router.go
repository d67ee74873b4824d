package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/vocify/internal/api/handler"
	"github.com/mcoot/vocify/internal/api/middleware"
	"github.com/mcoot/vocify/internal/api/response"
	"github.com/mcoot/vocify/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Sessions   *session.Manager
	HighScores handler.HighScoreReader
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.Sessions)
	highScoreHandler := handler.NewHighScoreHandler(cfg.HighScores)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/restart", sessionHandler.Restart).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/words", sessionHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/hint", sessionHandler.Hint).Methods(http.MethodGet)

	api.HandleFunc("/highscore", highScoreHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
