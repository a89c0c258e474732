package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"article-api/internal/config"
	"article-api/pkg/container"
	"article-api/pkg/logger"
)

func main() {
	// .env is optional; in containers config comes from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to build application container", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	if err := Serve(c); err != nil {
		logger.Error("server exited with error", err)
		os.Exit(1)
	}
}
