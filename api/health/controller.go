package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"userdir/config"

	"github.com/gin-gonic/gin"
)

// Pinger storage connectivity probe; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Controller Health check controller
type Controller struct {
	config    *config.Config
	db        Pinger
	startTime time.Time
}

// NewController Create health check controller.
// db is nil for the in-memory store.
func NewController(cfg *config.Config, db Pinger) *Controller {
	return &Controller{
		config:    cfg,
		db:        db,
		startTime: time.Now(),
	}
}

// RegisterRoutes Register health check routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.Health)
	router.GET("/health/live", c.Liveness)
	router.GET("/health/ready", c.Readiness)
}

// HealthResponse Health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version"`
	Storage   string           `json:"storage"`
	Uptime    string           `json:"uptime"`
	Timestamp string           `json:"timestamp"`
	Checks    map[string]Check `json:"checks,omitempty"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check Check item
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo System information
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
}

// Health reports the storage backend state, plus runtime details outside
// production.
func (c *Controller) Health(ctx *gin.Context) {
	storage := c.checkStorage(ctx.Request.Context())

	response := HealthResponse{
		Status:    storage.Status,
		Version:   c.config.App.Version,
		Storage:   c.config.Database.Type,
		Uptime:    time.Since(c.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]Check{"storage": storage},
	}

	if c.config.IsDevelopment() {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		response.System = &SystemInfo{
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     memStats.Alloc,
		}
	}

	status := http.StatusOK
	if storage.Status != statusHealthy {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, response)
}

// Liveness the process is serving requests
func (c *Controller) Liveness(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness user requests can be served: the storage backend answers.
func (c *Controller) Readiness(ctx *gin.Context) {
	if check := c.checkStorage(ctx.Request.Context()); check.Status != statusHealthy {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not_ready",
			"storage": c.config.Database.Type,
			"message": check.Message,
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ready", "storage": c.config.Database.Type})
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// checkStorage the in-memory store is always available.
func (c *Controller) checkStorage(ctx context.Context) Check {
	if c.db == nil {
		return Check{Status: statusHealthy, Message: "in-process store"}
	}

	start := time.Now()
	err := c.db.PingContext(ctx)
	latency := time.Since(start).String()
	if err != nil {
		return Check{Status: statusUnhealthy, Message: err.Error(), Latency: latency}
	}
	return Check{Status: statusHealthy, Latency: latency}
}
