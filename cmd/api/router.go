package api

import (
	"net/http"

	"pinflow-backend/internal/auth/delivery"
	authUsecase "pinflow-backend/internal/auth/usecase"
	pinterestDelivery "pinflow-backend/internal/pinterest/delivery"
	postDelivery "pinflow-backend/internal/post/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, postHandler *postDelivery.PostHandler, pinterestHandler *pinterestDelivery.PinterestHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Post routes (protected)
		posts := api.Group("/posts")
		posts.Use(delivery.AuthMiddleware(authUc))
		{
			posts.GET("", postHandler.GetPosts)
			posts.POST("", postHandler.CreatePost)
			posts.GET("/:id", postHandler.GetPostByID)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
		}

		// Pinterest routes
		pinterest := api.Group("/pinterest")
		{
			// Publish trigger: any method, invoked by a timer or manually.
			// Deployment guards this endpoint; it carries no user auth so
			// scheduled infrastructure can reach it.
			pinterest.Any("/publish", pinterestHandler.Publish)

			// OAuth callback: reached by the browser redirect from
			// Pinterest, so no bearer token is available here
			pinterest.GET("/auth/callback", pinterestHandler.Callback)

			protected := pinterest.Group("")
			protected.Use(delivery.AuthMiddleware(authUc))
			{
				protected.GET("/auth/url", pinterestHandler.GetAuthURL)
				protected.GET("/status", pinterestHandler.Status)
				protected.DELETE("/connection", pinterestHandler.Disconnect)
			}
		}
	}
}
