// Package api exposes the worker's ops surface over HTTP: liveness,
// pool status, Prometheus metrics, and a manual board sync trigger.
// There is no task CRUD here; the board is the product surface.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reelworks/reelpipe/pkg/database"
	"github.com/reelworks/reelpipe/pkg/queue"
	"github.com/reelworks/reelpipe/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// PoolReporter is the worker pool's health surface.
type PoolReporter interface {
	Health() *queue.PoolHealth
}

// BoardSyncer triggers one inbound board poll on demand.
type BoardSyncer interface {
	PollOnce(ctx context.Context) error
}

// HealthCheck is one component's verdict in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// Server is the ops HTTP server.
type Server struct {
	db     *database.Client
	pool   PoolReporter
	syncer BoardSyncer
	http   *http.Server
}

// NewServer creates the ops server. pool and syncer may be nil (tests,
// board sync disabled).
func NewServer(db *database.Client, pool PoolReporter, syncer BoardSyncer) *Server {
	return &Server{db: db, pool: pool, syncer: syncer}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.health)
	r.GET("/status", s.status)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/sync", s.triggerSync)
	return r
}

// Start runs the HTTP server, blocking until it stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// health handles GET /health. Only the worker's own components are
// checked; generator services are external and deliberately excluded so
// an upstream outage does not get this process restarted.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]HealthCheck{}
	status := healthStatusHealthy

	if _, err := database.Health(ctx, s.db.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		if ph := s.pool.Health(); ph != nil && !ph.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: ph.DBError}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	code := http.StatusOK
	if status == healthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// status handles GET /status with the full pool snapshot.
func (s *Server) status(c *gin.Context) {
	if s.pool == nil {
		c.JSON(http.StatusOK, gin.H{"worker_pool": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker_pool": s.pool.Health()})
}

// triggerSync handles POST /sync: one immediate inbound board poll,
// instead of waiting for the next scheduled tick.
func (s *Server) triggerSync(c *gin.Context) {
	if s.syncer == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "board sync is disabled"})
		return
	}
	if err := s.syncer.PollOnce(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "synced"})
}
