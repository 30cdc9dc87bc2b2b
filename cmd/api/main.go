package main

import (
	"log"

	"github.com/RCOSDP/weko-itemtype/config"
	"github.com/RCOSDP/weko-itemtype/internal/handler"
	"github.com/RCOSDP/weko-itemtype/internal/permissions"
	"github.com/RCOSDP/weko-itemtype/internal/redis"
	"github.com/RCOSDP/weko-itemtype/internal/repository"
	"github.com/RCOSDP/weko-itemtype/internal/server"
	"github.com/RCOSDP/weko-itemtype/internal/services"
	"github.com/RCOSDP/weko-itemtype/pkg/database"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	// Connect to Database
	database.Connect(cfg)

	if err := database.ApplyRawMigrations("migrations"); err != nil {
		log.Fatalf("Failed to apply raw migrations: %v", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("Failed to apply GORM migrations: %v", err)
	}

	// Redis is used for login rate limiting only; the registry runs
	// without it.
	var limiter *redis.RateLimiter
	if client, err := redis.NewClient(cfg); err != nil {
		l.Errorf("Redis unavailable, login rate limiting disabled: %v", err)
	} else {
		limiter = redis.NewRateLimiter(client, redis.DefaultRateLimitConfig())
	}

	itemTypeRepo := repository.NewItemTypeRepository(database.DB)
	propertyRepo := repository.NewPropertyRepository(database.DB)
	mappingRepo := repository.NewMappingRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)

	itemTypeService := services.NewItemTypeService(database.DB, itemTypeRepo)
	propertyService := services.NewPropertyService(database.DB, propertyRepo)
	mappingService := services.NewMappingService(database.DB, mappingRepo)
	authService := services.NewAuthService(userRepo, cfg)

	handlers := &server.Handlers{
		Auth:     handler.NewAuthHandler(authService, l),
		ItemType: handler.NewItemTypeHandler(itemTypeService, l),
		Property: handler.NewPropertyHandler(propertyService, l),
		Mapping:  handler.NewMappingHandler(itemTypeService, mappingService, l),
	}

	srv := server.New(cfg, l)
	srv.LoadTemplates("templates/*.html")
	srv.SetupRoutes(handlers, authService, permissions.ItemTypeEditor(), limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
