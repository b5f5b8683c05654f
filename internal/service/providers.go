package service

import "github.com/appdotbuilder/img-share/internal/repository"

func NewUserService(userStore repository.UserStore) *UserService {
	return &UserService{userStore: userStore}
}

func NewImageService(imageStore repository.ImageStore, userStore repository.UserStore) *ImageService {
	return &ImageService{
		imageStore: imageStore,
		userStore:  userStore,
		shortURL:   NewShortURLGenerator(imageStore),
	}
}

func NewImageQueryService(imageStore repository.ImageStore) *ImageQueryService {
	return &ImageQueryService{imageStore: imageStore}
}
