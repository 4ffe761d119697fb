// Package server provides the diagnostic HTTP surface over a bounded
// store: health, stats for monitoring, and get/set/del for the test
// harness. The store itself has no network surface; this server is the
// harness around it.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bcache"
)

// Config contains the server's own settings. Store sizing belongs to the
// store's construction, not here: the server receives a ready store handle.
type Config struct {
	// Token, when set, is required as a bearer token on /cache routes.
	// Empty leaves the routes open.
	Token string
}

// Server routes diagnostic HTTP traffic to a bounded store.
type Server struct {
	cfg    Config
	cache  bcache.Cache
	router *chi.Mux
}

// New constructs a Server with middleware and routes configured around the
// given store handle.
func New(cfg Config, cache bcache.Cache) *Server {
	s := &Server{
		cfg:    cfg,
		cache:  cache,
		router: chi.NewRouter(),
	}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/cache", func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/stats", s.handleStats)
		r.Get("/get", s.handleGet)
		r.Post("/set", s.handleSet)
		r.Post("/del", s.handleDel)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.Token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.cache.Stats())
}

// SetRequest is the JSON payload for /cache/set.
type SetRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
	TTL   *int   `json:"ttl,omitempty"` // seconds; omitted => store default
}

// DelRequest is the JSON payload for /cache/del.
type DelRequest struct {
	Key string `json:"key"`
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key", http.StatusBadRequest)
		return
	}
	v, ok := s.cache.Get(key)
	if !ok {
		http.Error(w, "key not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"key": key, "value": v})
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	var req SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Key == "" || req.Value == nil {
		http.Error(w, "missing key or value", http.StatusBadRequest)
		return
	}
	var ttl time.Duration
	if req.TTL != nil {
		if *req.TTL < 0 {
			http.Error(w, "ttl must be non-negative seconds", http.StatusBadRequest)
			return
		}
		ttl = time.Duration(*req.TTL) * time.Second
	}
	s.cache.SetWithTTL(req.Key, req.Value, ttl)
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleDel(w http.ResponseWriter, r *http.Request) {
	var req DelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Key == "" {
		http.Error(w, "missing key", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]bool{"deleted": s.cache.Delete(req.Key)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
