package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sjsage522/freebiefinder/config"
	"sjsage522/freebiefinder/logger"
	"sjsage522/freebiefinder/services/search"
)

// Server exposes the search service over HTTP
type Server struct {
	router *chi.Mux
	cfg    *config.Config
	search *search.Service
	log    *logger.Logger
}

// NewServer creates the HTTP server and wires its routes
func NewServer(cfg *config.Config, searchSvc *search.Service) *Server {
	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		search: searchSvc,
		log:    logger.ForServer(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/search", s.handleSearch)
}

// Router returns the HTTP handler for the server
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
