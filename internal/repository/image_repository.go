package repository

import "github.com/appdotbuilder/img-share/internal/model"

type ImageStore interface {
	Create(image *model.Image) error
	FindByID(id uint) (*model.Image, error)
	FindByShortURL(shortURL string) (*model.Image, error)
	ShortURLExists(shortURL string) (bool, error)
	UpdateByID(id uint, updates map[string]interface{}) error
	// IncrementViewCount 以相对更新的方式自增浏览量，避免读-改-写竞态丢失计数
	IncrementViewCount(id uint) error
	DeleteByIDAndUserID(id uint, userID uint) (bool, error)
	ListPublic() ([]model.Image, error)
	ListByUserID(userID uint) ([]model.Image, error)
}
