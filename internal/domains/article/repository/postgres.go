package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-api/internal/domains/article/model"
	"article-api/internal/domains/article/query"
)

// postgresRepository - raw SQL with pgxpool; the dynamic list query is
// compiled through the query package.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	q := `
		SELECT id, title, description, publication_date, author_id, created_at, updated_at
		FROM articles
		WHERE id = $1
	`

	var a model.Article
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.PublicationDate, &a.AuthorID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) FindByIDWithRelations(ctx context.Context, id int64) (*model.ArticleWithAuthor, error) {
	q := `
		SELECT a.id, a.title, a.description, a.publication_date, a.author_id,
		       a.created_at, a.updated_at,
		       u.id, u.email, u.first_name, u.last_name, u.middle_name,
		       u.created_at, u.updated_at
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.id = $1
	`

	var a model.ArticleWithAuthor
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.PublicationDate, &a.AuthorID,
		&a.CreatedAt, &a.UpdatedAt,
		&a.Author.ID, &a.Author.Email, &a.Author.FirstName, &a.Author.LastName,
		&a.Author.MiddleName, &a.Author.CreatedAt, &a.Author.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article with author: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) FindAllByFilters(ctx context.Context, req model.ListArticlesRequest) ([]model.ArticleWithAuthor, int64, error) {
	total, err := r.countByFilters(ctx, req.Filters)
	if err != nil {
		return nil, 0, err
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(
		"a.id", "a.title", "a.description", "a.publication_date", "a.author_id",
		"a.created_at", "a.updated_at",
		"u.id", "u.email", "u.first_name", "u.last_name", "u.middle_name",
		"u.created_at", "u.updated_at",
	)
	sb.From("articles a")
	sb.Join("users u", "a.author_id = u.id")

	conds, err := query.Conditions(sb, req.Filters)
	if err != nil {
		return nil, 0, fmt.Errorf("building article conditions: %w", err)
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy(query.Orderings(req.Sorts)...)

	limit, offset := query.LimitOffset(req.Page, req.Size)
	sb.Limit(limit)
	sb.Offset(offset)

	q, args := sb.Build()

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("running article list query: %w", err)
	}
	defer rows.Close()

	articles := []model.ArticleWithAuthor{}
	for rows.Next() {
		var a model.ArticleWithAuthor
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.PublicationDate, &a.AuthorID,
			&a.CreatedAt, &a.UpdatedAt,
			&a.Author.ID, &a.Author.Email, &a.Author.FirstName, &a.Author.LastName,
			&a.Author.MiddleName, &a.Author.CreatedAt, &a.Author.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating article rows: %w", err)
	}

	return articles, total, nil
}

// countByFilters shares the WHERE/JOIN shape of the list query so the
// total always matches the predicate.
func (r *postgresRepository) countByFilters(ctx context.Context, filters *model.ListFilters) (int64, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("articles a")
	sb.Join("users u", "a.author_id = u.id")

	conds, err := query.Conditions(sb, filters)
	if err != nil {
		return 0, fmt.Errorf("building article conditions: %w", err)
	}
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	q, args := sb.Build()

	var total int64
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting matching articles: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) Insert(ctx context.Context, a *model.Article) error {
	q := `
		INSERT INTO articles (title, description, publication_date, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, q,
		a.Title, a.Description, a.PublicationDate, a.AuthorID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Article) error {
	q := `
		UPDATE articles
		SET title = $1, description = $2, publication_date = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, q,
		a.Title, a.Description, a.PublicationDate, a.ID,
	).Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrArticleNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}

	return nil
}
