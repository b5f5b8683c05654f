package router

import (
	"github.com/appdotbuilder/img-share/internal/handler"
	"github.com/appdotbuilder/img-share/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *handler.Handler) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})
	api.GET("/health", h.Health)

	// 短链接访问带限流：公开入口最容易被刷
	viewLimiter := middleware.ViewRateLimitMiddleware()
	api.GET("/s/:short_url", viewLimiter, h.GetImageByShortURL)
}
