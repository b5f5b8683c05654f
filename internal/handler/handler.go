package handler

import "github.com/appdotbuilder/img-share/internal/service"

// Handler 聚合各领域服务，供路由注册使用
type Handler struct {
	users   *service.UserService
	images  *service.ImageService
	queries *service.ImageQueryService
}

func NewHandler(
	users *service.UserService,
	images *service.ImageService,
	queries *service.ImageQueryService,
) *Handler {
	return &Handler{
		users:   users,
		images:  images,
		queries: queries,
	}
}
