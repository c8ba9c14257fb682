package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/domain"
	"github.com/Biholo/planete-xplorer/internal/http/handlers"
	"github.com/Biholo/planete-xplorer/internal/http/middleware"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Categories *handlers.CategoryHandler
	Systems    *handlers.SystemHandler
	Objects    *handlers.ObjectHandler

	Signer      domain.TokenService
	Limiter     domain.RateLimiter
	CORSOrigins []string
	Registry    *prometheus.Registry
	Log         *logrus.Logger
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if deps.Registry != nil {
		metrics := middleware.NewMetrics(deps.Registry)
		router.Use(metrics.Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(deps.Signer)
	optionalAuth := middleware.OptionalAuth(deps.Signer)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// A nil limiter means throttling is disabled; the routes mount without
	// the middleware.
	throttle := func(route string) gin.HandlerFunc {
		if deps.Limiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(deps.Limiter, route, deps.Log)
	}

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", throttle("login"), deps.Auth.Login)
		auth.GET("/me", requireAuth, deps.Auth.Me)
		auth.POST("/refresh_token", deps.Auth.Refresh)
		auth.POST("/forgot-password", throttle("forgot-password"), deps.Auth.ForgotPassword)
		auth.POST("/reset-password", deps.Auth.ResetPassword)
	}

	users := api.Group("/users", requireAuth, requireAdmin)
	{
		users.GET("", deps.Users.List)
		users.GET("/:id", deps.Users.Get)
		users.PUT("/:id", deps.Users.Update)
		users.DELETE("/:id", deps.Users.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", requireAuth, deps.Categories.List)
		categories.GET("/:id", requireAuth, deps.Categories.Get)
		categories.POST("", requireAuth, requireAdmin, deps.Categories.Create)
		categories.PUT("/:id", requireAuth, requireAdmin, deps.Categories.Update)
		categories.DELETE("/:id", requireAuth, requireAdmin, deps.Categories.Delete)
	}

	systems := api.Group("/systems")
	{
		systems.GET("", requireAuth, deps.Systems.List)
		systems.GET("/:id", requireAuth, deps.Systems.Get)
		systems.POST("", requireAuth, requireAdmin, deps.Systems.Create)
		systems.PUT("/:id", requireAuth, requireAdmin, deps.Systems.Update)
		systems.DELETE("/:id", requireAuth, requireAdmin, deps.Systems.Delete)
	}

	objects := api.Group("/celestial-objects")
	{
		// Browsing stays open; the list works with or without a token.
		objects.GET("", optionalAuth, deps.Objects.List)
		objects.GET("/:id", requireAuth, deps.Objects.Get)
		objects.POST("", requireAuth, deps.Objects.Create)
		objects.PUT("/:id", requireAuth, requireAdmin, deps.Objects.Update)
		objects.DELETE("/:id", requireAuth, requireAdmin, deps.Objects.Delete)
	}

	return router
}
