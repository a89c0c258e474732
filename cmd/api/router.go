package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"article-api/internal/shared/middleware"
	"article-api/internal/shared/response"
	"article-api/pkg/container"
)

// NewRouter assembles the middleware chain and route table.
func NewRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(c))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.AuthHandler.Register)
			auth.POST("/login", c.AuthHandler.Login)
		}

		article := v1.Group("/article")
		{
			article.GET("", c.ArticleHandler.List)
			article.GET("/:id", c.ArticleHandler.GetByID)

			protected := article.Group("")
			protected.Use(middleware.AuthMiddleware(c.JWTManager))
			{
				protected.POST("", c.ArticleHandler.Create)
				protected.PATCH("/:id", c.ArticleHandler.Patch)
				protected.DELETE("/:id", c.ArticleHandler.Delete)
			}
		}
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{"database": "ok", "cache": "ok"}
		status := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		// A dead cache degrades reads but does not make the API
		// unavailable, so it never flips the status.
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = "degraded"
		}

		response.Success(ctx, status, gin.H{
			"status":  checks,
			"version": c.Config.App.Version,
		})
	}
}
