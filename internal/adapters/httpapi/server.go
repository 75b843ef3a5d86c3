// Package httpapi exposes the issue service over REST. It is a thin
// translation layer: request shapes are validated here, everything else is
// delegated to the service, and failures map onto a uniform error envelope.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/kanban/internal/ports/primary"
)

// Server wires the REST routes, the static board page, and the ambient
// observability endpoints onto a gin engine.
type Server struct {
	service primary.IssueService
	logger  *slog.Logger
	engine  *gin.Engine
	metrics *apiMetrics
}

// NewServer creates a Server around the given service. The logger must not
// be nil; pass slog.Default() when no custom handler is needed.
func NewServer(service primary.IssueService, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		service: service,
		logger:  logger,
		engine:  gin.New(),
		metrics: newAPIMetrics(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLog())
	s.engine.Use(s.metrics.record())

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Board page (presentation only).
	s.engine.GET("/", s.handleBoardPage)

	// Issue API.
	s.engine.GET("/api/issues", s.handleListIssues)
	s.engine.POST("/api/issues", s.handleCreateIssue)
	s.engine.PUT("/api/issues/:id", s.handleReplaceIssue)
	s.engine.PATCH("/api/issues/:id", s.handlePatchIssue)
	s.engine.DELETE("/api/issues/:id", s.handleDeleteIssue)

	// System.
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
}

// Handler returns the server as an http.Handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP on addr until the context is cancelled or an interrupt
// arrives, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("listening", "addr", addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	case sig := <-stop:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}

// requestLog logs one line per request after it completes.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
