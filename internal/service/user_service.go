package service

import (
	"errors"

	"github.com/appdotbuilder/img-share/internal/common"
	"github.com/appdotbuilder/img-share/internal/model"
	"github.com/appdotbuilder/img-share/internal/repository"
	"github.com/appdotbuilder/img-share/internal/utils"

	"gorm.io/gorm"
)

type UserService struct {
	userStore repository.UserStore
}

// CreateUser 严格创建用户：用户名或邮箱任一重复即失败，不做“查到即登录”的合并逻辑
func (s *UserService) CreateUser(username string, email string) (*model.User, error) {
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, common.NewValidationError(msg)
	}

	// 先查重，减少直接撞唯一索引的概率；索引仍是最终保障
	if exists, err := s.userStore.FieldExists(repository.UserFieldUsername, username); err != nil {
		return nil, common.NewInternalError("查询用户名失败", err)
	} else if exists {
		return nil, common.NewConflictError("用户名已存在")
	}
	if exists, err := s.userStore.FieldExists(repository.UserFieldEmail, email); err != nil {
		return nil, common.NewInternalError("查询邮箱失败", err)
	} else if exists {
		return nil, common.NewConflictError("邮箱已被注册")
	}

	user := &model.User{
		Username: username,
		Email:    email,
	}
	if err := s.userStore.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewConflictError("用户名或邮箱已存在")
		}
		return nil, common.NewInternalError("创建用户失败", err)
	}
	return user, nil
}
