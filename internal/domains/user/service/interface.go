package service

import (
	"context"

	"article-api/internal/domains/user/model"
)

type ServiceInterface interface {
	// GetUserByID returns model.ErrUserNotFound when the id does not resolve.
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// FindUserByEmail returns (nil, nil) when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)

	CreateUser(ctx context.Context, u *model.User) (int64, error)
}
