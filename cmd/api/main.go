package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/cache"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/config"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/database"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/gemini"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/handler"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/interview"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/logger"
	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Redis   *redis.Client
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	mongoClient, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		sugar.Fatal(err)
	}
	defer mongoClient.Disconnect(ctx)

	var redisClient *redis.Client
	if cfg.Limiter.Enabled {
		redisClient = cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, redisClient); err != nil {
			sugar.Fatalf("redis unreachable: %v", err)
		}
	}

	repo := repository.NewRepository(mongoClient.Database(cfg.Mongo.Database))

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Timeout)

	generator := interview.NewQuestionGenerator(geminiClient, log,
		cfg.Gemini.PrimaryModel, cfg.Interview.QuestionCount,
		cfg.Gemini.MaxAttempts, cfg.Gemini.RetryDelay)
	allocator := interview.NewTimeAllocator(cfg.Interview)
	grader := interview.NewGradingEngine(geminiClient, log,
		cfg.Gemini.PrimaryModel, cfg.Gemini.FallbackModel,
		cfg.Gemini.MaxAttempts, cfg.Gemini.RetryDelay)

	svc := interview.NewService(repo.Interview, generator, allocator, grader, log)

	app := &application{
		Logger: log,
		Config: cfg,
		Redis:  redisClient,
		Handler: &handler.Handler{
			Logger:     log,
			Interviews: svc,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
