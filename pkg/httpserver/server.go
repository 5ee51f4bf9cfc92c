// Package httpserver exposes the claim engine over a JSON HTTP surface.
package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/scrapline/claimd/pkg/claims"
	"github.com/scrapline/claimd/pkg/events"
	"github.com/scrapline/claimd/pkg/players"
)

// Config holds HTTP server configuration
type Config struct {
	ListenAddr string
	Port       int
}

// Server wraps the engine behind the HTTP JSON boundary
type Server struct {
	config   *Config
	orch     *claims.Orchestrator
	repo     *players.Repository
	schedule *events.Schedule
	server   *http.Server

	startTime      time.Time
	activeRequests atomic.Int64
	requestsServed atomic.Int64
}

// New creates a new Server
func New(config *Config, orch *claims.Orchestrator, repo *players.Repository, schedule *events.Schedule) *Server {
	s := &Server{
		config:    config,
		orch:      orch,
		repo:      repo,
		schedule:  schedule,
		startTime: time.Now(),
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.ListenAddr, config.Port),
		Handler:      s.countRequests(s.routes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /player/{wallet}", s.handlePlayer)
	mux.HandleFunc("GET /balance/{wallet}", s.handleBalance)
	mux.HandleFunc("GET /inventory/{wallet}", s.handleInventory)
	mux.HandleFunc("GET /factions/{wallet}", s.handleFactions)
	mux.HandleFunc("POST /factions/adjust", s.handleFactionAdjust)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("POST /equip", s.handleEquip)
	mux.HandleFunc("POST /craft", s.handleCraft)
	mux.HandleFunc("POST /claim-survival", s.handleClaim)

	return mux
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.activeRequests.Add(1)
		defer func() {
			s.activeRequests.Add(-1)
			s.requestsServed.Add(1)
		}()
		next.ServeHTTP(w, r)
	})
}

// ActiveRequests returns the number of requests currently in flight
func (s *Server) ActiveRequests() int64 {
	return s.activeRequests.Load()
}

// RequestsServed returns the number of completed requests since startup
func (s *Server) RequestsServed() int64 {
	return s.requestsServed.Load()
}

// StartTime returns when the server was constructed
func (s *Server) StartTime() time.Time {
	return s.startTime
}

// ListenAndServe starts the server and blocks
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
