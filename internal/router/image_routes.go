package router

import (
	"github.com/appdotbuilder/img-share/internal/handler"
	"github.com/appdotbuilder/img-share/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerImageRoutes(api *gin.RouterGroup, h *handler.Handler) {
	uploadLimiter := middleware.UploadRateLimitMiddleware()

	api.POST("/users", h.CreateUser)
	api.GET("/users/:id/images", h.GetUserImages)

	api.POST("/images", uploadLimiter, h.UploadImage)
	api.GET("/images/public", h.GetPublicImages)
	api.PATCH("/images/:id", h.UpdateImage)
	api.DELETE("/images/:id", h.DeleteImage)
}
