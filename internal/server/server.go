// Package server exposes the HTTP surface: the chat endpoint, the dashboard
// builder endpoints, configuration introspection, health and metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"brandlens/internal/config"
	"brandlens/internal/logging"
	"brandlens/internal/metrics"
)

// Server owns the gin engine and its http.Server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
	startTime  time.Time
}

// New assembles the engine, middleware chain and routes.
func New(cfg *config.Config, handlers *Handlers, reg *metrics.Registry) *Server {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if reg != nil {
		engine.Use(reg.Middleware())
	}

	if cfg.Server.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		engine:    engine,
		logger:    logging.NewComponentLogger("server"),
		startTime: time.Now(),
	}

	api := engine.Group("/api")
	api.Use(jsonMiddleware())

	api.POST("/chat", handlers.Chat)
	dashboards := api.Group("/dashboard")
	{
		dashboards.POST("/context", handlers.DashboardContext)
		dashboards.POST("/generate", handlers.DashboardGenerate)
	}
	api.GET("/config", handlers.Config)
	api.GET("/health", s.handleHealth)

	if reg != nil {
		engine.GET("/metrics", reg.Handler())
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	return s
}

// Engine exposes the router for handler-level tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(s.startTime).String(),
	})
}

// Start blocks serving HTTP until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down")
	return s.httpServer.Shutdown(ctx)
}
