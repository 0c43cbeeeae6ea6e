package routes

import (
	"time"

	_ "jobboard-http-service/docs"
	"jobboard-http-service/internal/app/controllers"
	"jobboard-http-service/internal/app/middleware"
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/internal/infrastructure/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the engine with every route registered; redisService may be nil
func SetupRouter(pool *database.ConnectionPool, cfg *config.Config, redisService services.InterfaceRedisService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.Use(cors.New(corsConfig(cfg)))

	serviceContainer := container.NewServiceContainer(pool, cfg, redisService)
	middleware.InitAuthMiddleware(cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := make([]string, 0, len(cfg.CORSAllowedOrigins))
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			// credentials cannot be combined with a wildcard origin
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}

	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = true
	return corsCfg
}

func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerUserRoutes(api, container)
	registerAdminRoutes(api, container)
}

func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	public := api.Group("")
	public.Use(middleware.IPRateLimiter(10, 20))

	public.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health", controllers.HandleHealthFunc(container, "ping"))

	healthGroup := public.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// credential endpoints get a tighter per-path budget
	authGroup := public.Group("/auth")
	authGroup.Use(middleware.CombinedRateLimiter(1, 5))
	authGroup.POST("/admin/register", controllers.HandleAuthFunc(container, "registerAdmin"))
	authGroup.POST("/admin/login", controllers.HandleAuthFunc(container, "loginAdmin"))
	authGroup.POST("/user/register", controllers.HandleAuthFunc(container, "registerUser"))
	authGroup.POST("/user/login", controllers.HandleAuthFunc(container, "loginUser"))

	public.GET("/jobs", middleware.Cache(middleware.CacheConfig{Expiration: 10 * time.Second}), controllers.HandleJobFunc(container, "listJobs"))
	public.GET("/jobs/:id", controllers.HandleJobFunc(container, "getJob"))
}

func registerUserRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	user := api.Group("")
	user.Use(middleware.AuthenticateUser())
	user.Use(middleware.IPRateLimiter(30, 50))

	user.POST("/jobs/:id/apply", controllers.HandleApplicationFunc(container, "apply"))
	user.GET("/me/applications", controllers.HandleApplicationFunc(container, "listMine"))
	user.GET("/me", controllers.HandleProfileFunc(container, "getUser"))
	user.PUT("/me", controllers.HandleProfileFunc(container, "updateUser"))
}

func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthenticateAdmin())
	admin.Use(middleware.IPRateLimiter(30, 50))

	admin.GET("/profile", controllers.HandleProfileFunc(container, "getAdmin"))
	admin.PUT("/profile", controllers.HandleProfileFunc(container, "updateAdmin"))

	jobGroup := admin.Group("/jobs")
	jobGroup.GET("", controllers.HandleJobFunc(container, "listOwnedJobs"))
	jobGroup.POST("", controllers.HandleJobFunc(container, "createJob"))
	jobGroup.GET("/:id", controllers.HandleJobFunc(container, "getOwnedJob"))
	jobGroup.PUT("/:id", controllers.HandleJobFunc(container, "updateJob"))
	jobGroup.DELETE("/:id", controllers.HandleJobFunc(container, "deleteJob"))
	jobGroup.GET("/:id/applications", controllers.HandleApplicationFunc(container, "listByJob"))

	applicationGroup := admin.Group("/applications")
	applicationGroup.GET("", controllers.HandleApplicationFunc(container, "listOwned"))
	applicationGroup.GET("/:id", controllers.HandleApplicationFunc(container, "getApplication"))
	applicationGroup.PUT("/:id/status", controllers.HandleApplicationFunc(container, "updateStatus"))
	applicationGroup.GET("/:id/history", controllers.HandleApplicationFunc(container, "history"))
	applicationGroup.DELETE("/:id", controllers.HandleApplicationFunc(container, "deleteApplication"))

	dashboardGroup := admin.Group("/dashboard")
	dashboardGroup.GET("/summary", controllers.HandleDashboardFunc(container, "summary"))
	dashboardGroup.GET("/jobs", controllers.HandleDashboardFunc(container, "jobs"))
	admin.GET("/candidates", controllers.HandleDashboardFunc(container, "candidates"))
}
