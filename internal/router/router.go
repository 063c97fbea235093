package router

import (
	"time"

	"github.com/gigtrack-dev/gigtrack/internal/handlers"
	"github.com/gigtrack-dev/gigtrack/internal/middleware"
	"github.com/gigtrack-dev/gigtrack/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/me", middleware.AuthMiddleware(), handlers.UpdateMe)
			auth.DELETE("/logout", handlers.Logout)
			auth.DELETE("/account", middleware.AuthMiddleware(), handlers.DeleteAccount)
		}

		clients := api.Group("/clients", middleware.AuthMiddleware())
		{
			clients.GET("", handlers.ListClients)
			clients.POST("", handlers.CreateClient)
			clients.PATCH("/:client_id", handlers.UpdateClient)
			clients.DELETE("/:client_id", handlers.DeleteClient)
			clients.GET("/:client_id/orders", handlers.GetClientOrders)
		}

		jobs := api.Group("/jobs")
		{
			// The catalog is readable anonymously; mutations need a caller.
			jobs.GET("", handlers.ListJobs)
			jobs.GET("/:job_id", handlers.GetJob)
			jobs.POST("", middleware.AuthMiddleware(), handlers.CreateJob)
			jobs.PATCH("/:job_id", middleware.AuthMiddleware(), handlers.UpdateJob)
			jobs.DELETE("/:job_id", middleware.AuthMiddleware(), handlers.RemoveJob)
			jobs.GET("/:job_id/orders", middleware.AuthMiddleware(), handlers.GetJobOrders)
		}

		orders := api.Group("/orders", middleware.AuthMiddleware())
		{
			orders.POST("", handlers.CreateOrder)
			orders.PATCH("/:order_id", handlers.UpdateOrder)
			orders.DELETE("/:order_id", handlers.DeleteOrder)
		}
	}

	return r
}
