// Package server exposes ticket generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"eurojackpot/generator"
	"eurojackpot/metrics"
	"eurojackpot/models"
	"eurojackpot/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Server serves the ticket API, health checks and metrics
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	tickets    service.TicketService
	collector  *metrics.Collector
}

// New builds the router. A nil collector disables /metrics.
func New(addr string, tickets service.TicketService, collector *metrics.Collector) *Server {
	s := &Server{
		router:    gin.New(),
		tickets:   tickets,
		collector: collector,
	}
	s.router.Use(gin.Recovery(), s.requestLogger())

	s.router.GET("/health", s.handleHealth)
	s.router.GET("/api/strategies", s.handleStrategies)
	s.router.GET("/api/ticket", s.handleTicket)
	if collector != nil {
		s.router.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router for use in tests or other servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.httpServer.Addr).Info("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	log.Info("HTTP server stopped")
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": generator.Strategies})
}

func (s *Server) handleTicket(c *gin.Context) {
	var (
		ticket *models.GeneratedTicket
		err    error
	)
	if id := c.Query("strategy"); id != "" {
		ticket, err = s.tickets.GenerateTicketWithStrategy(c.Request.Context(), models.StrategyID(id))
	} else {
		ticket, err = s.tickets.GenerateTicket(c.Request.Context())
	}

	switch {
	case errors.Is(err, service.ErrUnknownStrategy):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		log.WithError(err).Error("Failed to generate ticket")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate ticket"})
	default:
		c.JSON(http.StatusOK, ticket)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if s.collector != nil {
			s.collector.RecordRequest(route, status)
		}
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"route":    route,
			"status":   status,
			"duration": time.Since(start),
		}).Debug("HTTP request")
	}
}
