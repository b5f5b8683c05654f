package service

import (
	"github.com/appdotbuilder/img-share/internal/common"
	"github.com/appdotbuilder/img-share/internal/model"
	"github.com/appdotbuilder/img-share/internal/repository"
)

// ImageQueryService 只读查询：公开图片流与用户个人图集
type ImageQueryService struct {
	imageStore repository.ImageStore
}

// ListPublicImages 返回全部公开图片，最新创建的排在最前
func (s *ImageQueryService) ListPublicImages() ([]model.Image, error) {
	images, err := s.imageStore.ListPublic()
	if err != nil {
		return nil, common.NewInternalError("获取公开图片列表失败", err)
	}
	return images, nil
}

// ListUserImages 返回指定用户的全部图片（含私有），不保证顺序
func (s *ImageQueryService) ListUserImages(userID uint) ([]model.Image, error) {
	images, err := s.imageStore.ListByUserID(userID)
	if err != nil {
		return nil, common.NewInternalError("获取用户图片列表失败", err)
	}
	return images, nil
}
