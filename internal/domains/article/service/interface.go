package service

import (
	"context"

	"article-api/internal/domains/article/model"
)

type ServiceInterface interface {
	// CreateArticle persists a new article owned by authorID. Returns
	// usermodel.ErrUserNotFound when the author does not exist.
	CreateArticle(ctx context.Context, req model.CreateArticleRequest, authorID int64) (*model.ArticleWithAuthor, error)

	// PatchArticle applies the present fields to the article. Returns
	// model.ErrForbidden when userID does not own the article.
	PatchArticle(ctx context.Context, id int64, req model.PatchArticleRequest, userID int64) (*model.ArticleWithAuthor, error)

	// DeleteArticleByID removes the article after an ownership check.
	DeleteArticleByID(ctx context.Context, id int64, userID int64) error

	// GetArticleByID reads through the cache to the store.
	GetArticleByID(ctx context.Context, id int64) (*model.ArticleWithAuthor, error)

	// GetArticlesByFilters serves a list page, cached per request shape.
	GetArticlesByFilters(ctx context.Context, req model.ListArticlesRequest) (*model.ArticleList, error)
}
