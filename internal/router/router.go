package router

import (
	"net/http"

	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/config"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/handler"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/middleware"
	"github.com/gustavoramosalmeida-dot/sgp-plus/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the gin engine, CORS and all routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// cookie auth needs credentialed CORS; config validation already
	// rejected wildcard origins
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.Origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	st := store.New(db, cfg.Session.TTLMinutes)
	authHandler := handler.NewAuthHandler(st, cfg)
	sessionAuth := middleware.SessionAuth(st, cfg.Cookie.Name)

	api := r.Group("/api")

	// login and logout are public; logout is best-effort by design
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/auth/me", sessionAuth, authHandler.Me)

	// server-side proof that RBAC gating works end to end
	admin := api.Group("/admin", sessionAuth, middleware.RequirePermissions("rbac.manage"))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}
