// @title           Job Board HTTP Service API
// @version         1.0
// @description     Job postings, applications and the recruiter candidate dashboard

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"fmt"
	"jobboard-http-service/internal/app/routes"
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/internal/infrastructure/database"
	Logger "jobboard-http-service/pkg/logger"
	"os"
	"runtime"

	"github.com/joho/godotenv"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	// .env is optional; the environment may already be populated
	if err := godotenv.Load(); err != nil {
		fmt.Printf("no .env file loaded: %v\n", err)
	}

	cfg := config.GetConfig()

	if err := Logger.SetupLogger(cfg.LogDir); err != nil {
		fmt.Printf("failed to set up logger: %v\n", err)
		os.Exit(1)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		Logger.Error("failed to create database pool: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(pool.GetDB(), cfg.DBMigrationMode); err != nil {
		Logger.Error("migration failed: %v", err)
		os.Exit(1)
	}

	var redisService services.InterfaceRedisService
	if cfg.RedisEnabled {
		redisService = services.NewRedisService(cfg)
	}

	r := routes.SetupRouter(pool, cfg, redisService)

	printSystemInfo(pool)

	Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		Logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}

// printSystemInfo logs pool and runtime statistics at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool: %+v", stats)
	}

	Logger.Info("cpu cores: %d, goroutines: %d", runtime.NumCPU(), runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
