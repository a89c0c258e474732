package service

import (
	"context"

	"article-api/internal/domains/user/model"
	"article-api/internal/domains/user/repository"
)

// userService implements ServiceInterface
type userService struct {
	repo repository.RepositoryInterface
}

func NewUserService(repo repository.RepositoryInterface) ServiceInterface {
	return &userService{repo: repo}
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// CreateUser persists a new user. Users are created only during
// registration, so the password hash is expected to be set already.
func (s *userService) CreateUser(ctx context.Context, u *model.User) (int64, error) {
	return s.repo.Create(ctx, u)
}
