package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RCOSDP/weko-itemtype/config"
	"github.com/RCOSDP/weko-itemtype/internal/handler"
	"github.com/RCOSDP/weko-itemtype/internal/middleware"
	"github.com/RCOSDP/weko-itemtype/internal/permissions"
	"github.com/RCOSDP/weko-itemtype/internal/redis"
	"github.com/RCOSDP/weko-itemtype/internal/services"
	"github.com/RCOSDP/weko-itemtype/internal/transport/httpdto"
	"github.com/RCOSDP/weko-itemtype/pkg/database"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	ItemType *handler.ItemTypeHandler
	Property *handler.PropertyHandler
	Mapping  *handler.MappingHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// LoadTemplates parses the HTML pages rendered by the registry
// screens.
func (s *Server) LoadTemplates(glob string) {
	s.engine.LoadHTMLGlob(glob)
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, factory permissions.Factory, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	auth := s.engine.Group("/v1/auth")
	{
		auth.POST("/login", middleware.AuthRateLimitMiddleware(limiter), handlers.Auth.Login)
	}

	// The gate conceals the registry screens from unauthorized
	// callers, answering 404 on denial.
	guard := middleware.NeedPermissions(factory, true)

	it := s.engine.Group("/itemtypes")
	it.Use(middleware.IdentityMiddleware(authService))
	{
		it.GET("", guard, handlers.ItemType.Index)
		it.GET("/register", guard, handlers.ItemType.Index)
		it.GET("/:id", guard, handlers.ItemType.Index)
		it.GET("/:id/render", guard, handlers.ItemType.Render)
		it.POST("/register", handlers.ItemType.Register)
		it.POST("/:id/register", handlers.ItemType.Register)

		it.GET("/property", guard, handlers.Property.Index)
		it.GET("/property/list", guard, handlers.Property.List)
		it.GET("/property/:id", guard, handlers.Property.Get)
		it.POST("/property", handlers.Property.Create)
		it.POST("/property/:id", handlers.Property.Create)

		it.GET("/mapping", handlers.Mapping.Index)
		it.GET("/mapping/:id", handlers.Mapping.Index)
		it.POST("/mapping", handlers.Mapping.Register)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
