package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dimitrilongo/wacdo/config"
	"github.com/dimitrilongo/wacdo/internal/api/handler"
	"github.com/dimitrilongo/wacdo/internal/api/middleware"
	"github.com/dimitrilongo/wacdo/pkg/jwt"
	"github.com/dimitrilongo/wacdo/pkg/redis"
)

// Setup initialise et retourne le moteur Gin.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globaux ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Santé ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// Endpoints publics
		api.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		api.POST("/register", h.Auth.Register)

		// Endpoints authentifiés
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/logout", h.Auth.Logout)
			authorized.GET("/me", h.Auth.Me)

			// Ressources réservées aux administrateurs
			admin := authorized.Group("")
			admin.Use(middleware.AdminOnly())
			{
				restaurants := admin.Group("/restaurants")
				{
					restaurants.GET("", h.Restaurant.List)
					restaurants.POST("", h.Restaurant.Create)
					restaurants.GET("/:id", h.Restaurant.Get)
					restaurants.PUT("/:id", h.Restaurant.Update)
					restaurants.DELETE("/:id", h.Restaurant.Delete)
				}

				postes := admin.Group("/postes")
				{
					postes.GET("", h.Poste.List)
					postes.POST("", h.Poste.Create)
					postes.GET("/:id", h.Poste.Get)
					postes.PUT("/:id", h.Poste.Update)
					postes.DELETE("/:id", h.Poste.Delete)
				}

				users := admin.Group("/users")
				{
					users.GET("", h.User.List)
					users.POST("", h.User.Create)
					users.GET("/:id", h.User.Get)
					users.PUT("/:id", h.User.Update)
					users.DELETE("/:id", h.User.Delete)
					users.GET("/:id/affectation", h.User.CurrentAffectation)
				}

				affectations := admin.Group("/affectations")
				{
					affectations.GET("", h.Affectation.List)
					affectations.POST("", h.Affectation.Create)
					affectations.GET("/export", h.Affectation.Export)
					affectations.GET("/:id", h.Affectation.Get)
					affectations.PUT("/:id", h.Affectation.Update)
					affectations.DELETE("/:id", h.Affectation.Delete)
				}
			}
		}
	}

	return r
}
