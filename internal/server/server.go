package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/agent"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/config"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/db"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/history"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/scoring"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             *db.DB
	runtime        *agent.Runtime
	engine         *scoring.Engine
	history        *history.Service
	versions       VersionReader
	jwtService     *JWTService
	passwordConfig *config.PasswordConfig
	validate       *validator.Validate
	limiter        *rateLimiter
}

// Config holds server configuration
type Config struct {
	Addr        string
	DatabaseURL string
	Runtime     *agent.Runtime
	Engine      *scoring.Engine
}

// New creates a new server instance. The agent runtime and scoring engine
// are injected so the CLI and the server share one wiring path.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:             database,
		runtime:        cfg.Runtime,
		engine:         cfg.Engine,
		history:        history.NewService(database),
		versions:       database,
		jwtService:     NewJWTService(jwtConfig),
		passwordConfig: passwordConfig,
		validate:       validator.New(),
		limiter:        newRateLimiter(rateLimitPerMinute, rateLimitBurst),
	}
	if s.runtime != nil {
		s.runtime.Versions = database
		s.runtime.History = s.history
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // agent runs can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router with shared and authenticated route groups.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	authed := http.NewServeMux()
	authed.HandleFunc("POST /api/v1/agent/run", s.handleAgentRun)
	authed.HandleFunc("POST /api/v1/score", s.handleScore)
	authed.HandleFunc("POST /api/v1/history/undo", s.handleUndo)
	authed.HandleFunc("POST /api/v1/history/redo", s.handleRedo)
	authed.HandleFunc("GET /api/v1/resume/current", s.handleCurrentResume)
	authed.HandleFunc("GET /api/v1/resume/versions/{id}", s.handleResumeVersion)
	authed.HandleFunc("GET /api/v1/history/timeline", s.handleTimeline)
	authed.HandleFunc("DELETE /api/v1/history/timeline", s.handleClearTimeline)
	mux.Handle("/api/v1/", middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(authed))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients over the per-IP budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(s.extractClientID(r)) {
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID identifies a client by IP for rate limiting.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
