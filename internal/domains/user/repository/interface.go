package repository

import (
	"context"

	"article-api/internal/domains/user/model"
)

// RepositoryInterface is the user data access contract.
type RepositoryInterface interface {
	// FindByID returns model.ErrUserNotFound when the id does not resolve.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByEmail returns (nil, nil) when no user has the email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	Create(ctx context.Context, u *model.User) (int64, error)
}
