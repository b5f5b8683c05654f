package repository

import (
	"time"

	"github.com/appdotbuilder/img-share/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) FindByShortURL(shortURL string) (*model.Image, error) {
	var image model.Image
	if err := r.db.Where("short_url = ?", shortURL).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ShortURLExists(shortURL string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Where("short_url = ?", shortURL).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ImageRepository) UpdateByID(id uint, updates map[string]interface{}) error {
	return r.db.Model(&model.Image{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ImageRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&model.Image{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"view_count": gorm.Expr("view_count + ?", 1),
			"updated_at": time.Now(),
		}).Error
}

func (r *ImageRepository) DeleteByIDAndUserID(id uint, userID uint) (bool, error) {
	// 单条带条件删除：不存在与无权限对调用方不可区分
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Image{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ImageRepository) ListPublic() ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Where("is_public = ?", true).
		Order("created_at DESC, id DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) ListByUserID(userID uint) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Where("user_id = ?", userID).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
