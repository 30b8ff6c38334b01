package router

import (
	"net/http"

	"github.com/FlatBushZombies/quickhands/internal/api/handler"
	"github.com/FlatBushZombies/quickhands/internal/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies, cfg config.ServerConfig) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware())
	r.Use(CORSMiddleware(cfg.ClientOrigin))
	if cfg.RateLimitPerSecond > 0 {
		r.Use(RateLimitMiddleware(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "quickhands",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	applicationHandler := handler.NewApplicationHandler(deps)
	notificationHandler := handler.NewNotificationHandler(deps)
	userHandler := handler.NewUserHandler(deps)
	wsHandler := handler.NewWsHandler(deps.Hub, cfg.ClientOrigin)

	// Live connection endpoint; the client passes its user id the same way it
	// does on the socket.io handshake.
	r.GET("/ws", wsHandler.Connect)

	api := r.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("", IdentityMiddleware(), jobHandler.CreateJob)
			jobs.POST("/:id/apply", IdentityMiddleware(), jobHandler.ApplyToJob)
			jobs.GET("/:id/applications", IdentityMiddleware(), jobHandler.GetJobApplications)
		}

		applications := api.Group("/applications", IdentityMiddleware())
		{
			applications.GET("/my", applicationHandler.GetMyApplications)
			applications.PATCH("/:id/status", applicationHandler.UpdateApplicationStatus)
		}

		users := api.Group("/users")
		{
			users.GET("/:clerkId", userHandler.GetUser)
			users.POST("", IdentityMiddleware(), userHandler.UpsertUser)
		}

		notifications := api.Group("/notifications", IdentityMiddleware())
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.PATCH("/read-all", notificationHandler.MarkAllNotificationsRead)
		}
	}

	return r
}
