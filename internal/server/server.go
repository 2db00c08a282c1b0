// Package server implements the reference task REST API that the client
// targets: the /api/tasks collection with envelope responses.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/taskman/internal/database"
	"github.com/thenoetrevino/taskman/internal/models"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":3000"

// shutdownTimeout bounds how long in-flight requests may drain
const shutdownTimeout = 5 * time.Second

// Server represents the reference task API
type Server struct {
	addr         string
	handler      http.Handler
	httpServer   *http.Server
	metrics      *Metrics
	logger       *slog.Logger
	shutdownOnce sync.Once
}

// NewServer creates a server backed by repo
func NewServer(addr string, repo database.TaskRepository, logger *slog.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if logger == nil {
		logger = slog.Default()
	}
	metrics := NewMetrics()

	s := &Server{
		addr:    addr,
		metrics: metrics,
		logger:  logger,
	}
	s.handler = NewRouter(repo, metrics, logger)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, useful with httptest
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// NewRouter builds the gin engine serving /api
func NewRouter(repo database.TaskRepository, metrics *Metrics, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger, metrics))
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.OK(gin.H{"status": "ok"}))
	})
	api.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.OK(metrics.GetSnapshot()))
	})

	h := &taskHandlers{repo: repo, metrics: metrics, logger: logger}
	tasks := api.Group("/tasks")
	tasks.GET("", h.list)
	tasks.POST("", h.create)
	tasks.GET("/:id", h.get)
	tasks.PUT("/:id", h.update)
	tasks.DELETE("/:id", h.remove)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.Fail("Route not found"))
	})

	return router
}

// requestLogger logs each request through slog and feeds the metrics
func requestLogger(logger *slog.Logger, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		metrics.ObserveStatus(status)
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start),
		)
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the server on an existing listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.logger.Info("task api listening", "addr", listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("task api context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve error: %w", err)
		}
		return nil
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := s.httpServer.Shutdown(drainCtx); shutdownErr != nil {
			err = fmt.Errorf("failed to shut down task api: %w", shutdownErr)
		}
		snapshot := s.metrics.GetSnapshot()
		s.logger.Info("task api stopped",
			"requests", snapshot.RequestsTotal,
			"uptime", snapshot.Uptime,
		)
	})
	return err
}
