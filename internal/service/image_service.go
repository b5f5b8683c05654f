package service

import (
	"errors"
	"time"

	"github.com/appdotbuilder/img-share/internal/common"
	"github.com/appdotbuilder/img-share/internal/dto"
	"github.com/appdotbuilder/img-share/internal/model"
	"github.com/appdotbuilder/img-share/internal/repository"
	"github.com/appdotbuilder/img-share/internal/utils"

	"gorm.io/gorm"
)

type ImageService struct {
	imageStore repository.ImageStore
	userStore  repository.UserStore
	shortURL   *ShortURLGenerator
}

// Upload 持久化一条图片元数据记录（文件本体不落盘，file_path 仅作透传字符串）
func (s *ImageService) Upload(req dto.UploadImageRequest) (*model.Image, error) {
	if ok, msg := utils.ValidateTitle(req.Title); !ok {
		return nil, common.NewValidationError(msg)
	}
	if req.FileSize <= 0 {
		return nil, common.NewValidationError("文件大小必须为正数")
	}

	exists, err := s.userStore.Exists(req.UserID)
	if err != nil {
		return nil, common.NewInternalError("查询用户失败", err)
	}
	if !exists {
		return nil, common.NewNotFoundError("用户不存在")
	}

	shortURL, err := s.shortURL.Generate()
	if err != nil {
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	image := &model.Image{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Filename:    req.Filename,
		FilePath:    req.FilePath,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		ShortURL:    shortURL,
		ViewCount:   0,
		IsPublic:    isPublic,
	}
	if err := s.imageStore.Create(image); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发生成撞上了同一个候选，唯一索引兜底
			return nil, common.NewConflictError("短链接冲突，请重试")
		}
		return nil, common.NewInternalError("保存图片记录失败", err)
	}
	return image, nil
}

// Update 部分更新：缺省字段不动，description 显式 null 清空。
// 任何一次调用（包括空更新）都会刷新 updated_at。
// 注意：此操作不做归属校验，与 Delete 的不对称为既有行为，保留不改。
func (s *ImageService) Update(id uint, req dto.UpdateImageRequest) (*model.Image, error) {
	if req.Title.Set {
		if !req.Title.Valid {
			return nil, common.NewValidationError("标题不能为 null")
		}
		if ok, msg := utils.ValidateTitle(req.Title.Value); !ok {
			return nil, common.NewValidationError(msg)
		}
	}
	if req.IsPublic.Set && !req.IsPublic.Valid {
		return nil, common.NewValidationError("is_public 不能为 null")
	}

	if _, err := s.imageStore.FindByID(id); err != nil {
		if IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, common.NewInternalError("查询图片失败", err)
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Title.Set {
		updates["title"] = req.Title.Value
	}
	if req.Description.Set {
		if req.Description.Valid {
			updates["description"] = req.Description.Value
		} else {
			updates["description"] = nil
		}
	}
	if req.IsPublic.Set {
		updates["is_public"] = req.IsPublic.Value
	}

	if err := s.imageStore.UpdateByID(id, updates); err != nil {
		return nil, common.NewInternalError("更新图片失败", err)
	}

	image, err := s.imageStore.FindByID(id)
	if err != nil {
		// 更新和回读之间被并发删除，按不存在处理
		if IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, common.NewInternalError("读取更新后的图片失败", err)
	}
	return image, nil
}

// Delete 仅当图片存在且归属匹配时删除；两种失败对调用方均表现为 false
func (s *ImageService) Delete(id uint, userID uint) (bool, error) {
	deleted, err := s.imageStore.DeleteByIDAndUserID(id, userID)
	if err != nil {
		return false, common.NewInternalError("删除图片失败", err)
	}
	return deleted, nil
}

// GetByShortURL 短链接访问：仅公开图片可见（属主也无旁路），
// 命中时以相对更新自增浏览量并返回自增后的记录
func (s *ImageService) GetByShortURL(shortURL string) (*model.Image, error) {
	image, err := s.imageStore.FindByShortURL(shortURL)
	if err != nil {
		if IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, common.NewInternalError("查询短链接失败", err)
	}
	if !image.IsPublic {
		return nil, nil
	}

	if err := s.imageStore.IncrementViewCount(image.ID); err != nil {
		return nil, common.NewInternalError("更新浏览量失败", err)
	}

	fresh, err := s.imageStore.FindByID(image.ID)
	if err != nil {
		return nil, common.NewInternalError("读取图片失败", err)
	}
	return fresh, nil
}

// IsRecordNotFound 判断错误是否为记录不存在。
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
