package api

import (
	"net/http"

	"userdir/api/health"
	"userdir/api/middleware"
	"userdir/api/user"
	"userdir/config"

	"github.com/gin-gonic/gin"
)

// Router Route configuration
type Router struct {
	engine           *gin.Engine
	config           *config.Config
	healthController *health.Controller
	userController   *user.Controller
	metricsHandler   http.Handler
}

// NewRouter Create route configuration. metricsHandler may be nil.
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	userController *user.Controller,
	metricsHandler http.Handler,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// order matters: the request id must exist before anything logs
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:           engine,
		config:           cfg,
		healthController: healthController,
		userController:   userController,
		metricsHandler:   metricsHandler,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.userController.RegisterRoutes(apiGroup)
	}

	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
			"users":   "/api/v1/users",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
