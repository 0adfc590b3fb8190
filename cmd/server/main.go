package main

import (
	"log"
	"net/http"
	"os"

	"linguatrack/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"linguatrack/internal/config"
	"linguatrack/internal/db"
	"linguatrack/internal/handler"
	"linguatrack/internal/model"
	"linguatrack/internal/repository"
	"linguatrack/internal/router"
	"linguatrack/internal/service"
	"linguatrack/internal/session"
)

// @title LinguaTrack API
// @version 1.0
// @description Language-learning profile tracker with a world-language catalog, per-user language lists and ranking statistics.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.AccessLog{},
			&model.UserLanguage{},
			&model.Language{},
			&model.LanguageFamily{},
			&model.Fluency{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.LanguageFamily{},
		&model.Language{},
		&model.Fluency{},
		&model.UserLanguage{},
		&model.AccessLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	languageRepo := repository.NewLanguageRepository(gormDB)
	familyRepo := repository.NewFamilyRepository(gormDB)
	fluencyRepo := repository.NewFluencyRepository(gormDB)
	userLanguageRepo := repository.NewUserLanguageRepository(gormDB)
	accessLogRepo := repository.NewAccessLogRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, accessLogRepo, cfg.MinPasswordLength)
	profileService := service.NewProfileService(userRepo, userLanguageRepo)
	catalogService := service.NewCatalogService(languageRepo, familyRepo, fluencyRepo)
	statsService := service.NewStatsService(statsRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.SessionTTL, cfg.CookieSecure)
	profileHandler := handler.NewProfileHandler(profileService, statsService, sessions, cfg.CookieSecure)
	languageHandler := handler.NewLanguageHandler(catalogService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		sessions,
		cfg.SessionTTL,
		cfg.CookieSecure,
		authHandler,
		profileHandler,
		languageHandler,
		catalogHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
