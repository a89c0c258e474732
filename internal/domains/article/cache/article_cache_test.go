package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/domains/article/model"
	usermodel "article-api/internal/domains/user/model"
	pkgcache "article-api/pkg/cache"
)

func sampleArticle(id, authorID int64) *model.ArticleWithAuthor {
	return &model.ArticleWithAuthor{
		Article: model.Article{
			ID:              id,
			Title:           "Testing",
			Description:     "cache-aside",
			PublicationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			AuthorID:        authorID,
		},
		Author: usermodel.User{
			ID:        authorID,
			Email:     "ivan@example.com",
			FirstName: "Ivan",
			LastName:  "Petrov",
		},
	}
}

func TestArticleCache_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewArticleCache(pkgcache.NewMemory(), time.Minute)

	c.PutArticle(ctx, sampleArticle(1, 7))

	got, found := c.GetArticle(ctx, 1)
	require.True(t, found)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(7), got.AuthorID)
	assert.Equal(t, int64(7), got.Author.ID)
}

func TestArticleCache_GetMiss(t *testing.T) {
	ctx := context.Background()
	c := NewArticleCache(pkgcache.NewMemory(), time.Minute)

	_, found := c.GetArticle(ctx, 99)
	assert.False(t, found)
}

func TestArticleCache_InvalidateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := NewArticleCache(pkgcache.NewMemory(), time.Minute)

	c.PutArticle(ctx, sampleArticle(1, 7))
	c.InvalidateArticle(ctx, 1)
	c.InvalidateArticle(ctx, 1) // absent key, still fine

	_, found := c.GetArticle(ctx, 1)
	assert.False(t, found)
}

func TestArticleCache_PutOverwritesAndRefreshes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	kv := pkgcache.NewMemoryWithClock(func() time.Time { return now })
	c := NewArticleCache(kv, 10*time.Minute)

	c.PutArticle(ctx, sampleArticle(1, 7))

	// Overwrite 9 minutes later; the TTL restarts from the second put.
	now = now.Add(9 * time.Minute)
	updated := sampleArticle(1, 7)
	updated.Title = "Updated"
	c.PutArticle(ctx, updated)

	now = now.Add(9 * time.Minute)
	got, found := c.GetArticle(ctx, 1)
	require.True(t, found)
	assert.Equal(t, "Updated", got.Title)
}

func TestArticleCache_ListRoundTripByFingerprint(t *testing.T) {
	ctx := context.Background()
	c := NewArticleCache(pkgcache.NewMemory(), time.Minute)

	req := model.ListArticlesRequest{Page: 1, Size: 10, Filters: &model.ListFilters{Search: "est"}}
	list := &model.ArticleList{Articles: []model.ArticleWithAuthor{*sampleArticle(1, 7)}, Total: 1}

	c.PutArticleList(ctx, list, req)

	got, found := c.GetArticleList(ctx, req)
	require.True(t, found)
	assert.Equal(t, int64(1), got.Total)

	// A structurally different request reads nothing.
	other := model.ListArticlesRequest{Page: 1, Size: 10}
	_, found = c.GetArticleList(ctx, other)
	assert.False(t, found)
}

func TestArticleCache_ResetListsWipesEverything(t *testing.T) {
	ctx := context.Background()
	kv := pkgcache.NewMemory()
	c := NewArticleCache(kv, time.Minute)

	req := model.ListArticlesRequest{Page: 1, Size: 10}
	c.PutArticle(ctx, sampleArticle(1, 7))
	c.PutArticleList(ctx, &model.ArticleList{Total: 1}, req)

	c.ResetLists(ctx)

	_, found := c.GetArticleList(ctx, req)
	assert.False(t, found)
	assert.Equal(t, 0, kv.Len())
}

// failingCache simulates an unavailable cache backend.
type failingCache struct{}

func (failingCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, errors.New("connection refused")
}

func (failingCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("connection refused")
}

func (failingCache) Delete(context.Context, ...string) error {
	return errors.New("connection refused")
}

func (failingCache) FlushAll(context.Context) error {
	return errors.New("connection refused")
}

func (failingCache) Ping(context.Context) error {
	return errors.New("connection refused")
}

func TestArticleCache_FailuresDegradeToMiss(t *testing.T) {
	ctx := context.Background()
	c := NewArticleCache(failingCache{}, time.Minute)

	_, found := c.GetArticle(ctx, 1)
	assert.False(t, found)

	_, found = c.GetArticleList(ctx, model.ListArticlesRequest{Page: 1, Size: 10})
	assert.False(t, found)

	// Writes must not panic or surface errors either.
	c.PutArticle(ctx, sampleArticle(1, 7))
	c.InvalidateArticle(ctx, 1)
	c.PutArticleList(ctx, &model.ArticleList{}, model.ListArticlesRequest{Page: 1, Size: 10})
	c.ResetLists(ctx)
}
