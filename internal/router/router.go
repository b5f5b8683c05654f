package router

import (
	"github.com/appdotbuilder/img-share/internal/handler"
	"github.com/appdotbuilder/img-share/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头与请求 ID 中间件
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	registerPublicRoutes(api, rt.handler)
	registerImageRoutes(api, rt.handler)
}
