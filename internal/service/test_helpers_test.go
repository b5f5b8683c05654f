package service

import (
	"testing"

	"github.com/appdotbuilder/img-share/internal/model"
	"github.com/appdotbuilder/img-share/internal/repository"
	"github.com/appdotbuilder/img-share/internal/testutils"

	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	users   *UserService
	images  *ImageService
	queries *ImageQueryService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutils.SetupDB(t)
	userStore := repository.NewUserRepository(gdb)
	imageStore := repository.NewImageRepository(gdb)

	return &testEnv{
		db:      gdb,
		users:   NewUserService(userStore),
		images:  NewImageService(imageStore, userStore),
		queries: NewImageQueryService(imageStore),
	}
}

func mustCreateUser(t *testing.T, env *testEnv, username string, email string) *model.User {
	t.Helper()

	user, err := env.users.CreateUser(username, email)
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user
}
