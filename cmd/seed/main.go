// Siembra perfiles y categorías iniciales sin levantar el servidor.
package main

import (
	"context"
	"log"

	"soulverse/internal/config"
	"soulverse/internal/db"
	"soulverse/internal/repository"
	"soulverse/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	zlog, _ := zap.NewProduction()
	defer zlog.Sync()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		zlog.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		zlog.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	profileSvc := service.NewProfileService(zlog, repository.NewPgProfileRepository(pool))
	categorySvc := service.NewCategoryService(zlog, repository.NewPgCategoryRepository(pool), nil)

	profiles, err := profileSvc.Seed(ctx)
	if err != nil {
		zlog.Fatal("seed profiles", zap.Error(err))
	}
	categories, _, err := categorySvc.Seed(ctx)
	if err != nil {
		zlog.Fatal("seed categories", zap.Error(err))
	}

	zlog.Info("seed finished",
		zap.Int("profiles", profiles),
		zap.Int("categories", categories),
	)
}
