package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lepinkainen/videosorter/sorter"
)

// Server is the HTTP front end. Only one sort runs at a time.
type Server struct {
	router   *gin.Engine
	sorter   *sorter.Sorter
	observer sorter.Observer // extra observer for every run, may be nil
	registry *prometheus.Registry
	log      zerolog.Logger

	mu      sync.Mutex
	running bool
	last    *sorter.Summary
}

// NewServer creates the API server. observer (usually a metrics.Recorder)
// sees every run's events; registry is exposed on /metrics when not nil.
func NewServer(s *sorter.Sorter, observer sorter.Observer, registry *prometheus.Registry, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	srv := &Server{
		router:   gin.New(),
		sorter:   s,
		observer: observer,
		registry: registry,
		log:      logger.With().Str("component", "api").Logger(),
	}

	srv.setupMiddleware()
	srv.setupRoutes()

	return srv
}

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.router.Use(gin.Recovery())

	// Logging middleware
	s.router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("API request")
	})

	// CORS for browser front ends
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	})
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.POST("/sort", s.sort)
	api.GET("/status", s.getStatus)

	if s.registry != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("starting API server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down API server")
		return httpServer.Shutdown(shutdownCtx)
	}
}

// tryStart marks a run as in progress, reporting false if one already is
func (s *Server) tryStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *Server) finish(summary *sorter.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	if summary != nil {
		s.last = summary
	}
}

// Error response helper
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
