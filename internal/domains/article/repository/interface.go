package repository

import (
	"context"

	"article-api/internal/domains/article/model"
)

// RepositoryInterface is the article data access contract.
type RepositoryInterface interface {
	// FindByID returns model.ErrArticleNotFound when the id does not resolve.
	FindByID(ctx context.Context, id int64) (*model.Article, error)

	// FindByIDWithRelations resolves the author relation alongside the row.
	FindByIDWithRelations(ctx context.Context, id int64) (*model.ArticleWithAuthor, error)

	// FindAllByFilters executes the compiled predicate/order/page query
	// and returns the matching rows with their total before pagination.
	FindAllByFilters(ctx context.Context, req model.ListArticlesRequest) ([]model.ArticleWithAuthor, int64, error)

	// Insert persists a new article and fills in store-assigned fields.
	Insert(ctx context.Context, a *model.Article) error

	// Update persists the mutable fields; the store refreshes updated_at.
	Update(ctx context.Context, a *model.Article) error

	// Delete removes the row. Hard delete, no tombstone.
	Delete(ctx context.Context, id int64) error
}
