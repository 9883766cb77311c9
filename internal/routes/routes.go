package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bilemo/phone-shop-api/internal/audit"
	"github.com/bilemo/phone-shop-api/internal/config"
	"github.com/bilemo/phone-shop-api/internal/handlers"
	"github.com/bilemo/phone-shop-api/internal/httperr"
	"github.com/bilemo/phone-shop-api/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	authHandler := handlers.NewAuthHandler(db, cfg)
	shopHandler := handlers.NewShopHandler(db)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	phoneHandler := handlers.NewPhoneHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// Unknown routes get the same body as a missing resource.
	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c)
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/shops", shopHandler.List)
			secured.GET("/shops/:id", shopHandler.Show)

			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Show)
			secured.POST("/users/add", userHandler.Create)
			secured.DELETE("/users/:id", userHandler.Delete)
			secured.POST("/users/:id/phones/:phoneId", userHandler.AttachPhone)
			secured.DELETE("/users/:id/phones/:phoneId", userHandler.DetachPhone)

			secured.GET("/phones", phoneHandler.List)
			secured.GET("/phones/:id", phoneHandler.Show)
			secured.POST("/phones/addphone", phoneHandler.Create)
			secured.PUT("/phones/:id", phoneHandler.Update)
			secured.DELETE("/phones/:id", phoneHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
