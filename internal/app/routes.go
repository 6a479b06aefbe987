package app

import (
	"net/http"
	"time"

	"github.com/Thonkla/PlaceMate/internal/archive"
	"github.com/Thonkla/PlaceMate/internal/auth"
	"github.com/Thonkla/PlaceMate/internal/cache"
	"github.com/Thonkla/PlaceMate/internal/config"
	"github.com/Thonkla/PlaceMate/internal/handlers"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"
	"github.com/Thonkla/PlaceMate/internal/repo"
	"github.com/Thonkla/PlaceMate/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Deps are everything the HTTP API is built from.
type Deps struct {
	Config   config.Config
	Log      logger.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	Plans    repo.PlanRepo
	Archives repo.ArchiveRepo
	Places   repo.PlaceRepo
	Users    repo.UserRepo
	Tx       repo.TxManager
	Archive  *archive.Manager

	// PlaceCache may be nil to search without caching.
	PlaceCache *cache.PlaceCache
	Tokens     *auth.Tokens

	// Calendar and Connector are nil when Google is not configured.
	Calendar  service.CalendarSyncer
	Connector handlers.CalendarConnector
}

// NewRouter builds the engine with middleware and all routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Log), d.Metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.HTTP.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", handlers.CalendarTokenHeader, requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	Setup(r, d)
	return r
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, d Deps) {
	cfg := d.Config
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	if d.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")
	cookies := handlers.CookieOptions{Secure: cfg.HTTP.SecureCookies}

	userSvc := service.NewUserService(d.Users)
	authHandler := handlers.NewAuthHandler(d.Tokens, userSvc, cookies, d.Log, d.Metrics)
	registerAuthRoutes(api, authHandler)

	placeSvc := service.NewPlaceService(d.Places, d.PlaceCache, d.Log)
	placesHandler := handlers.NewPlacesHandler(placeSvc, d.Log, d.Metrics)
	api.GET("/places/search", placesHandler.Search)

	planSvc := service.NewPlanService(service.PlanDeps{
		Plans:       d.Plans,
		Archives:    d.Archives,
		Places:      d.Places,
		Tx:          d.Tx,
		Archive:     d.Archive,
		Calendar:    d.Calendar,
		SyncTimeout: cfg.Google.SyncTimeout.Duration(),
		Metrics:     d.Metrics,
		Log:         d.Log,
	})
	googleHandler := handlers.NewGoogleHandler(planSvc, d.Connector, cookies, cfg.Google.FrontendRedirect, d.Log, d.Metrics)
	api.GET("/google/auth", googleHandler.Auth)
	api.GET("/google/auth/callback", googleHandler.Callback)
	api.GET("/google/check-token", googleHandler.CheckToken)
	api.POST("/google/disconnect", googleHandler.Disconnect)

	protected := api.Group("", auth.RequireUser(d.Tokens))
	protected.POST("/google/sync-plan", googleHandler.SyncPlan)
	registerPlannerRoutes(protected, handlers.NewPlannerHandler(planSvc, d.Log, d.Metrics))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "PlaceMate Planner API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"openapi": "/swagger-doc.json",
			"health":  "/health",
			"metrics": "/metrics",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

// Static segments are registered next to :planId; gin resolves them first.
func registerPlannerRoutes(api *gin.RouterGroup, h *handlers.PlannerHandler) {
	api.GET("/planner/user", h.List)
	api.GET("/planner/deleted", h.Deleted)
	api.POST("/planner/add", h.Create)
	api.DELETE("/planner/remove", h.Remove)
	api.GET("/planner/:planId", h.Get)
	api.PUT("/planner/:planId/edit", h.Edit)
	api.POST("/planner/:planId/add-place", h.AddPlaces)
	api.POST("/planner/:planId/add-listtogo", h.AddListToGo)
	api.DELETE("/planner/:planId/remove-place", h.RemovePlace)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}
