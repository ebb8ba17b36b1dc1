package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/config"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/middlewares"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the gin engine and the underlying http.Server lifecycle.
type Server struct {
	cfg        *config.Configuration
	httpServer *http.Server
}

// NewServer builds the HTTP server. The registerHandlerFn callback receives
// a RouterGroup prefixed with /api/v1 and is expected to register all
// provider routes on it.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	switch cfg.Server.Mode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "dev":
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.Server.Mode)
	}

	engine := gin.New()
	engine.Use(middlewares.Logger())
	engine.Use(ginzap.RecoveryWithZap(zap.L().Named("recovery"), true))

	apiGroup := engine.Group("/api/v1")

	if cfg.Auth.Enabled {
		auth, err := middlewares.Auth(cfg.Auth.JWTSecretFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize auth middleware: %w", err)
		}
		apiGroup.Use(auth)
	}

	registerHandlerFn(apiGroup)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: engine,
		},
	}, nil
}

// Start serves HTTP until the listener fails or Stop is called. It returns
// http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start(_ context.Context) error {
	zap.S().Named("server").Infow("starting http server", "addr", s.httpServer.Addr, "mode", s.cfg.Server.Mode)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully, waiting for in-flight requests up
// to shutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
