package server

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventstream/infrastructure/security"
	httpHandler "eventstream/interfaces/http"
	"eventstream/interfaces/middleware"
)

type Handlers struct {
	Auth       httpHandler.IAuthHandler
	User       httpHandler.IUserHandler
	Event      httpHandler.IEventHandler
	Video      httpHandler.IVideoHandler
	AdminUser  httpHandler.IAdminUserHandler
	Statistics httpHandler.IStatisticsHandler
}

func InitiateRouter(h Handlers, tokens *security.TokenService, db *sql.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:4201", "https://localhost:4200", "https://localhost:4201"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		if err := db.PingContext(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("api/Auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	users := router.Group("api/users")
	users.Use(middleware.Auth(tokens))
	{
		users.GET("/:id/profile", h.User.GetProfile)
		users.PUT("/:id/profile", h.User.UpdateProfile)
		users.POST("/:id/deactivate", h.User.Deactivate)
		users.POST("/play/:videoId", h.User.Play)
		users.GET("/watchhistory", h.User.WatchHistory)
		users.GET("/events", h.User.Events)
	}

	admin := router.Group("api/Admin")
	admin.Use(middleware.AdminOnly(tokens))
	{
		admin.POST("/events", h.Event.Create)
		admin.GET("/events", h.Event.List)
		admin.GET("/events/:id", h.Event.Get)
		admin.PUT("/events/:id", h.Event.Update)
		admin.DELETE("/events/:id", h.Event.Delete)

		admin.POST("/videos", h.Video.Create)
		admin.GET("/videos", h.Video.List)
		admin.GET("/videos/:id", h.Video.Get)
		admin.PUT("/videos/:id", h.Video.Update)
		admin.DELETE("/videos/:id", h.Video.Delete)

		admin.POST("/users", h.AdminUser.Create)
		admin.GET("/users", h.AdminUser.List)
		admin.PUT("/users/:id", h.AdminUser.Update)
		admin.DELETE("/users/:id", h.AdminUser.Delete)

		admin.GET("/statistics/users", h.Statistics.Users)
		admin.GET("/statistics/events", h.Statistics.Events)
		admin.GET("/statistics/views", h.Statistics.Views)
		admin.GET("/statistics/dashboard", h.Statistics.Dashboard)
	}

	return router
}
