package api

import (
	"pinflow-backend/internal/auth/delivery"
	authUsecase "pinflow-backend/internal/auth/usecase"
	pinterestDelivery "pinflow-backend/internal/pinterest/delivery"
	pinterestUsecase "pinflow-backend/internal/pinterest/usecase"
	postDelivery "pinflow-backend/internal/post/delivery"
	postUsecase "pinflow-backend/internal/post/usecase"
	"pinflow-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	authHandler      *delivery.AuthHandler
	postHandler      *postDelivery.PostHandler
	pinterestHandler *pinterestDelivery.PinterestHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, postUc postUsecase.PostUsecase, publisher *pinterestUsecase.Publisher, connectUc pinterestUsecase.ConnectUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:      authUc,
		authHandler:      delivery.NewAuthHandler(authUc),
		postHandler:      postDelivery.NewPostHandler(postUc),
		pinterestHandler: pinterestDelivery.NewPinterestHandler(publisher, connectUc, cfg.AppBaseURL),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.postHandler, h.pinterestHandler)

	return r.Run(addr)
}
