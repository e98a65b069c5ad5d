package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/space-ranger/ship-registry/internal/api/middleware"
	"github.com/space-ranger/ship-registry/internal/api/rest"
	"github.com/space-ranger/ship-registry/internal/api/shared/executor"
	"github.com/space-ranger/ship-registry/internal/logger"
	"github.com/space-ranger/ship-registry/internal/store"
	"github.com/space-ranger/ship-registry/internal/tokenmodule"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig

	// OwnerAccount is the only account allowed to create series
	OwnerAccount string
	// MintPrice is the minimum attached deposit per mint, in whole units
	MintPrice string
	// MediaPrefix is the content-address prefix prepended to series media paths
	MediaPrefix string
}

// Server wraps the HTTP server
type Server struct {
	config      Config
	store       store.Store
	tokenClient tokenmodule.Client
	httpServer  *http.Server
}

// New creates a new API server
func New(cfg Config, store store.Store, tokenClient tokenmodule.Client) *Server {
	return &Server{
		config:      cfg,
		store:       store,
		tokenClient: tokenClient,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create shared executor (contains the registry business logic)
	exec, err := executor.NewExecutor(s.store, s.tokenClient, s.config.OwnerAccount, s.config.MintPrice, s.config.MediaPrefix)
	if err != nil {
		return fmt.Errorf("failed to create executor: %w", err)
	}

	// Create REST handler
	restHandler := rest.NewHandler(exec)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
