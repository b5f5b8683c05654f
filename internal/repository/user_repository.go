package repository

import "github.com/appdotbuilder/img-share/internal/model"

type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	Exists(id uint) (bool, error)
	Create(user *model.User) error
	FieldExists(field UserField, value string) (bool, error)
}
