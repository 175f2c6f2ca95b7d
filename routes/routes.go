package routes

import (
	"content-portal-api/controllers"
	"content-portal-api/middleware"
	"content-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Content Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Podcast episodes
			episodes := protected.Group("/episodes")
			{
				episodes.GET("", controllers.GetEpisodes)
				episodes.POST("", controllers.CreateEpisode)
			}

			// The active recording prompt is visible to every submitter
			protected.GET("/podcast-questions/active", controllers.GetActiveQuestion)

			// Scenario submissions
			scenarios := protected.Group("/scenarios")
			{
				scenarios.GET("", controllers.GetScenarios)
				scenarios.POST("", controllers.CreateScenario)
			}

			// Spotlight consent submissions
			spotlights := protected.Group("/spotlights")
			{
				spotlights.GET("", controllers.GetSpotlights)
				spotlights.POST("", controllers.CreateSpotlight)
			}

			// Custom production requests
			productions := protected.Group("/productions")
			{
				productions.GET("", controllers.GetProductions)
				productions.POST("", controllers.CreateProduction)
				productions.PUT("/:id/notes", controllers.UpdateClientNotes)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.GET("/counter", controllers.GetNotificationCounter)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			}

			// Review dashboard (admin only)
			review := protected.Group("/review")
			review.Use(middleware.RequireRole(models.RoleAdmin))
			{
				review.GET("/content", controllers.GetReviewContent)
				review.POST("/:type/:id/approve", controllers.ApproveContent)
				review.POST("/:type/:id/request-edit", controllers.RequestEditContent)
			}

			// Admin management
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.PUT("/productions/:id/status", controllers.UpdateProductionStatus)
				admin.PUT("/productions/:id/payment-status", controllers.UpdatePaymentStatus)

				admin.GET("/podcast-questions", controllers.GetQuestions)
				admin.POST("/podcast-questions", controllers.CreateQuestion)
				admin.PUT("/podcast-questions/:id/activate", controllers.ActivateQuestion)
			}
		}
	}
}
