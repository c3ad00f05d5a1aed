package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"soulverse/internal/config"
	"soulverse/internal/db"
	apihttp "soulverse/internal/http"
	"soulverse/internal/logger"
	"soulverse/internal/repository"
	"soulverse/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		zlog.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		zlog.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := client.Ping(ctxPing).Err(); err != nil {
			zlog.Warn("redis ping failed, running without cache", zap.Error(err))
		} else {
			cache = client
		}
		cancel()
	}

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	categoryRepo := repository.NewPgCategoryRepository(pool)
	commentRepo := repository.NewPgCommentRepository(pool)
	likeRepo := repository.NewPgLikeRepository(pool)

	userSvc := service.NewUserService(zlog, userRepo)
	profileSvc := service.NewProfileService(zlog, profileRepo)
	categorySvc := service.NewCategoryService(zlog, categoryRepo, cache)
	commentSvc := service.NewCommentService(zlog, commentRepo, likeRepo, profileRepo, userRepo)
	likeSvc := service.NewLikeService(zlog, likeRepo, commentRepo, userRepo)

	if cfg.SeedOnStart {
		if _, err := profileSvc.Seed(ctx); err != nil {
			zlog.Fatal("seed profiles", zap.Error(err))
		}
		if _, _, err := categorySvc.Seed(ctx); err != nil {
			zlog.Fatal("seed categories", zap.Error(err))
		}
	}

	userHandler := apihttp.NewUserHandler(zlog, userSvc)
	profileHandler := apihttp.NewProfileHandler(zlog, profileSvc)
	categoryHandler := apihttp.NewCategoryHandler(zlog, categorySvc)
	commentHandler := apihttp.NewCommentHandler(zlog, commentSvc, likeSvc)
	pageHandler := apihttp.NewPageHandler(zlog, profileSvc, categorySvc)

	router, err := apihttp.NewRouter(zlog, userHandler, profileHandler, categoryHandler, commentHandler, pageHandler)
	if err != nil {
		zlog.Fatal("router setup", zap.Error(err))
	}

	if cfg.ReconcileIntervalMinutes > 0 {
		go likeSvc.RunReconciler(ctx, time.Duration(cfg.ReconcileIntervalMinutes)*time.Minute)
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
}
