package service

import (
	"context"
	"time"

	"article-api/internal/domains/article/cache"
	"article-api/internal/domains/article/model"
	"article-api/internal/domains/article/repository"
	userservice "article-api/internal/domains/user/service"
)

// articleService coordinates the store and the cache. Write paths reset
// the list cache because list entries are keyed by opaque fingerprints
// and cannot be invalidated selectively.
type articleService struct {
	repo  repository.RepositoryInterface
	users userservice.ServiceInterface
	cache *cache.ArticleCache
	now   func() time.Time
}

func NewArticleService(repo repository.RepositoryInterface, users userservice.ServiceInterface, articleCache *cache.ArticleCache) ServiceInterface {
	return &articleService{
		repo:  repo,
		users: users,
		cache: articleCache,
		now:   time.Now,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, req model.CreateArticleRequest, authorID int64) (*model.ArticleWithAuthor, error) {
	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	publicationDate := s.now()
	if req.PublicationDate != "" {
		publicationDate, err = model.ParseDate(req.PublicationDate)
		if err != nil {
			return nil, err
		}
	}

	article := &model.Article{
		Title:           req.Title,
		Description:     req.Description,
		PublicationDate: publicationDate,
		AuthorID:        author.ID,
	}
	if err := s.repo.Insert(ctx, article); err != nil {
		return nil, err
	}

	s.cache.ResetLists(ctx)

	return &model.ArticleWithAuthor{Article: *article, Author: *author}, nil
}

func (s *articleService) PatchArticle(ctx context.Context, id int64, req model.PatchArticleRequest, userID int64) (*model.ArticleWithAuthor, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != userID {
		return nil, model.ErrForbidden
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.PublicationDate != nil {
		publicationDate, err := model.ParseDate(*req.PublicationDate)
		if err != nil {
			return nil, err
		}
		article.PublicationDate = publicationDate
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	s.cache.ResetLists(ctx)

	updated, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.PutArticle(ctx, updated)

	return updated, nil
}

func (s *articleService) DeleteArticleByID(ctx context.Context, id int64, userID int64) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if article.AuthorID != userID {
		return model.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateArticle(ctx, id)
	s.cache.ResetLists(ctx)

	return nil
}

func (s *articleService) GetArticleByID(ctx context.Context, id int64) (*model.ArticleWithAuthor, error) {
	if cached, found := s.cache.GetArticle(ctx, id); found {
		return cached, nil
	}

	article, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.PutArticle(ctx, article)

	return article, nil
}

func (s *articleService) GetArticlesByFilters(ctx context.Context, req model.ListArticlesRequest) (*model.ArticleList, error) {
	if cached, found := s.cache.GetArticleList(ctx, req); found {
		return cached, nil
	}

	articles, total, err := s.repo.FindAllByFilters(ctx, req)
	if err != nil {
		return nil, err
	}

	list := &model.ArticleList{Articles: articles, Total: total}
	s.cache.PutArticleList(ctx, list, req)

	return list, nil
}
