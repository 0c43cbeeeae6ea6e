package controllers

import (
	"runtime"

	"jobboard-http-service/internal/app/middleware"
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/error/response"
	"jobboard-http-service/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness and dependency status
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Ping
// @Summary      Liveness check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 2. Status reports database and redis reachability plus pool statistics
// @Summary      Dependency status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /health/status [get]
func (c *HealthController) Status() {
	pool := c.Container.GetService("pool").(*database.ConnectionPool)

	status := gin.H{
		"goroutines": runtime.NumGoroutine(),
		"database":   "up",
		"redis":      "disabled",
	}

	if err := pool.HealthCheck(c.Ctx.Request.Context()); err != nil {
		status["database"] = "down"
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "database unreachable", status)
		return
	}
	if stats, err := pool.Stats(); err == nil {
		status["pool"] = stats
	}

	if redisService, ok := c.Container.GetService("redis").(services.InterfaceRedisService); ok {
		if err := redisService.Ping(); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}

	response.Success(c.Ctx, status)
}

// 3. CacheStats
// @Summary      Response cache statistics
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/cache-stats [get]
func (c *HealthController) CacheStats() {
	response.Success(c.Ctx, middleware.CacheStats())
}
