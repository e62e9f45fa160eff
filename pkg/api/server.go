// Package api exposes the coordinator over HTTP: task lifecycle, templates,
// archive analytics, the WebSocket progress stream, health and metrics.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ragweave/maestro/pkg/archive"
	"github.com/ragweave/maestro/pkg/coordinator"
	"github.com/ragweave/maestro/pkg/database"
	"github.com/ragweave/maestro/pkg/events"
	"github.com/ragweave/maestro/pkg/taskstore"
	"github.com/ragweave/maestro/pkg/templates"
)

// Server is the HTTP surface of the control plane.
type Server struct {
	coordinator *coordinator.Coordinator
	store       *taskstore.Store
	registry    *templates.Registry
	archive     *archive.Service
	dbClient    *database.Client
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer wires the HTTP server. archive, dbClient and connManager may be
// nil; the corresponding endpoints report unavailable.
func NewServer(
	coord *coordinator.Coordinator,
	store *taskstore.Store,
	registry *templates.Registry,
	archiveService *archive.Service,
	dbClient *database.Client,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		coordinator: coord,
		store:       store,
		registry:    registry,
		archive:     archiveService,
		dbClient:    dbClient,
		connManager: connManager,
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/healthz", s.healthHandler)
	e.GET("/metrics", func(c *echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})

	v1 := e.Group("/api/v1")
	v1.POST("/tasks", s.createTaskHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.GET("/tasks/:id/progress", s.getProgressHandler)
	v1.POST("/tasks/:id/abort", s.abortTaskHandler)
	v1.GET("/users/:id/tasks", s.recentTasksHandler)
	v1.GET("/templates", s.listTemplatesHandler)
	v1.GET("/analytics/tasks", s.taskAnalyticsHandler)
	v1.GET("/analytics/agents", s.agentAnalyticsHandler)
	v1.GET("/ws", s.wsHandler)

	s.echo = e
	return s
}

// Handler exposes the routed handler for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on addr. Blocks until the server exits.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
