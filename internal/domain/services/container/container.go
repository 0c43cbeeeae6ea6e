package container

import (
	"sync"

	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/internal/infrastructure/database"
	Logger "jobboard-http-service/pkg/logger"

	"gorm.io/gorm"
)

// ServiceContainer wires every service once and hands them out by name
type ServiceContainer struct {
	pool   *database.ConnectionPool
	config *config.Config

	jwtService      services.InterfaceJWTService
	redisService    services.InterfaceRedisService
	resolver        services.InterfaceOwnershipResolver
	identityService services.InterfaceIdentityService

	jobService         services.InterfaceJobService
	applicationService services.InterfaceApplicationService
	dashboardService   services.InterfaceDashboardService

	mu sync.RWMutex
}

// NewServiceContainer builds the container; redisService may be nil to run without a cache
func NewServiceContainer(pool *database.ConnectionPool, cfg *config.Config, redisService services.InterfaceRedisService) *ServiceContainer {
	if pool == nil || pool.DB == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	if redisService != nil {
		if err := redisService.Ping(); err != nil {
			Logger.Warning("redis ping failed: %v, dashboard caching disabled", err)
			redisService = nil
		}
	}

	container := &ServiceContainer{
		pool:         pool,
		config:       cfg,
		redisService: redisService,
	}
	container.initializeServices()
	return container
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	db := c.pool.DB

	c.jwtService = services.NewJWTService(c.config)
	c.resolver = services.NewOwnershipResolver(c.config)
	c.identityService = services.NewIdentityService(db, c.config, c.jwtService)

	c.jobService = services.NewJobService(db, c.config, c.resolver, c.redisService)
	c.applicationService = services.NewApplicationService(db, c.config, c.jobService, c.resolver, c.redisService)
	c.dashboardService = services.NewDashboardService(db, c.config, c.jobService, c.redisService)
}

// GetService returns the service registered under name, or nil
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.pool.DB
	case "pool":
		return c.pool
	case "jwt":
		return c.jwtService
	case "redis":
		if c.redisService == nil {
			return nil
		}
		return c.redisService
	case "ownership":
		return c.resolver
	case "identity":
		return c.identityService
	case "job":
		return c.jobService
	case "application":
		return c.applicationService
	case "dashboard":
		return c.dashboardService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool.DB
}
