// @title         edutech-profesor API
// @version       1.0
// @description   Teacher records (profesor) CRUD service.
// @BasePath      /edutechinnovations/api/v1
// @schemes       http
// @host          localhost:8080
package main

//go:generate swag init -g main.go -d ./,../../api/http/handlers,../../api/http/presenter -o ../../docs --outputTypes go

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"

	_ "github.com/edutechinnovations/proyect/docs"

	// internal imports
	apihttp "github.com/edutechinnovations/proyect/api/http"
	"github.com/edutechinnovations/proyect/api/http/handlers"
	"github.com/edutechinnovations/proyect/pkg/config"
	"github.com/edutechinnovations/proyect/pkg/health"
	healthcheck "github.com/edutechinnovations/proyect/pkg/health/checkers"
	"github.com/edutechinnovations/proyect/pkg/logger"
	"github.com/edutechinnovations/proyect/pkg/profesor"
	"github.com/edutechinnovations/proyect/pkg/repository/cached"
	"github.com/edutechinnovations/proyect/pkg/repository/memory"
	pgrepo "github.com/edutechinnovations/proyect/pkg/repository/postgres"
	"github.com/edutechinnovations/proyect/pkg/storage/postgres"
	redisstore "github.com/edutechinnovations/proyect/pkg/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.Log

	ctx := context.Background()
	var checkers []health.Checker

	// Storage
	var repo profesor.Repository
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn("using in-memory storage; records are lost on restart")
		repo = memory.NewProfesorRepository()
	default:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolOptions{MaxConns: int32(cfg.DBMaxConns)})
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		repo = pgrepo.NewProfesorRepository(pool)
		checkers = append(checkers, healthcheck.NewPostgresChecker(pool))
	}

	// Optional read-through cache
	if cfg.RedisURL != "" {
		rdb, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		repo = cached.NewProfesorRepository(repo, cached.NewRedisStore(rdb), cfg.CacheTTL, log.WithField("component", "cache"))
		checkers = append(checkers, healthcheck.NewRedisChecker(rdb))
		log.Infof("profesor cache enabled (ttl %s)", cfg.CacheTTL)
	}

	profesorUC := profesor.NewService(repo, profesor.NewBcryptHasher(cfg.BcryptCost))
	profesorHandler := handlers.NewProfesorHandler(profesorUC, log)
	healthHandler := handlers.NewHealthHandler(health.NewService(checkers...))

	app := apihttp.NewApp(cfg.RequestTimeout, log)
	apihttp.Register(app, healthHandler, profesorHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
