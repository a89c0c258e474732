// Package container wires the application dependency graph in one
// place so cmd/api stays declarative.
package container

import (
	"context"
	"fmt"
	"time"

	"article-api/internal/config"
	articlecache "article-api/internal/domains/article/cache"
	articlehandler "article-api/internal/domains/article/handler"
	articlerepo "article-api/internal/domains/article/repository"
	articleservice "article-api/internal/domains/article/service"
	authhandler "article-api/internal/domains/auth/handler"
	authservice "article-api/internal/domains/auth/service"
	userrepo "article-api/internal/domains/user/repository"
	userservice "article-api/internal/domains/user/service"
	infracache "article-api/internal/infrastructure/cache"
	"article-api/internal/infrastructure/database"
	pkgcache "article-api/pkg/cache"
	"article-api/pkg/jwt"
	"article-api/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache pkgcache.Cache

	JWTManager *jwt.Manager

	ArticleHandler *articlehandler.ArticleHandler
	AuthHandler    *authhandler.AuthHandler
}

// New builds the full graph: infrastructure first, then repositories,
// services and handlers.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	kv := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := kv.Ping(ctx); err != nil {
		// The cache layer degrades reads to misses, so a dead Redis is
		// a warning at startup, not a failure.
		logger.Warn("redis unreachable at startup, cache degraded", err)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	userRepo := userrepo.NewPostgresRepository(db.Pool)
	userService := userservice.NewUserService(userRepo)

	articleRepo := articlerepo.NewPostgresRepository(db.Pool)
	articleCache := articlecache.NewArticleCache(kv, cfg.Cache.TTL)
	articleService := articleservice.NewArticleService(articleRepo, userService, articleCache)

	authService := authservice.NewAuthService(userService, jwtManager)

	return &Container{
		Config:         cfg,
		DB:             db,
		Cache:          kv,
		JWTManager:     jwtManager,
		ArticleHandler: articlehandler.NewArticleHandler(articleService),
		AuthHandler:    authhandler.NewAuthHandler(authService),
	}, nil
}

// Cleanup releases infrastructure connections. Safe to call once at
// shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("closing cache client", err)
		}
	}
}
