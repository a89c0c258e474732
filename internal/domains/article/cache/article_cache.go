// Package cache mediates all article reads and writes against the
// key-value cache. Cache failures never propagate: a failed read is a
// miss, a failed write leaves the entry to expire by TTL.
package cache

import (
	"context"
	"time"

	"article-api/internal/domains/article/model"
	"article-api/internal/domains/article/query"
	pkgcache "article-api/pkg/cache"
	"article-api/pkg/logger"
)

const DefaultTTL = 600 * time.Second

// ArticleCache owns (de)serialization of article projections; the
// underlying client only moves bytes.
type ArticleCache struct {
	kv  pkgcache.Cache
	ttl time.Duration
}

func NewArticleCache(kv pkgcache.Cache, ttl time.Duration) *ArticleCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ArticleCache{kv: kv, ttl: ttl}
}

// GetArticle returns the cached projection for the id, or false on miss.
// A cache error degrades to a miss so the caller falls back to the store.
func (c *ArticleCache) GetArticle(ctx context.Context, id int64) (*model.ArticleWithAuthor, bool) {
	var article model.ArticleWithAuthor

	found, err := c.kv.Get(ctx, query.ArticleKey(id), &article)
	if err != nil {
		logger.Warn("article cache read failed, treating as miss", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	return &article, true
}

// PutArticle stores the projection under its id, overwriting any
// existing entry and refreshing the TTL.
func (c *ArticleCache) PutArticle(ctx context.Context, article *model.ArticleWithAuthor) {
	if err := c.kv.Set(ctx, query.ArticleKey(article.ID), article, c.ttl); err != nil {
		logger.Warn("article cache write failed", err)
	}
}

// InvalidateArticle deletes the single-item entry. Idempotent.
func (c *ArticleCache) InvalidateArticle(ctx context.Context, id int64) {
	if err := c.kv.Delete(ctx, query.ArticleKey(id)); err != nil {
		logger.Warn("article cache invalidation failed", err)
	}
}

// GetArticleList returns the cached page for the request's fingerprint,
// or false on miss.
func (c *ArticleCache) GetArticleList(ctx context.Context, req model.ListArticlesRequest) (*model.ArticleList, bool) {
	var list model.ArticleList

	found, err := c.kv.Get(ctx, query.Fingerprint(req), &list)
	if err != nil {
		logger.Warn("article list cache read failed, treating as miss", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	return &list, true
}

// PutArticleList stores the paginated result under the request's
// fingerprint.
func (c *ArticleCache) PutArticleList(ctx context.Context, list *model.ArticleList, req model.ListArticlesRequest) {
	if err := c.kv.Set(ctx, query.Fingerprint(req), list, c.ttl); err != nil {
		logger.Warn("article list cache write failed", err)
	}
}

// ResetLists wipes the whole cache namespace. List entries are keyed by
// opaque fingerprints with no reverse index from article id, so writes
// invalidate coarsely instead of tracking per-query dependencies.
func (c *ArticleCache) ResetLists(ctx context.Context) {
	if err := c.kv.FlushAll(ctx); err != nil {
		logger.Warn("article cache flush failed", err)
	}
}
