package main

import (
	"github.com/NotHarshhaa/personal-blog/internal/app"
	"github.com/NotHarshhaa/personal-blog/pkg/cache"
	"github.com/NotHarshhaa/personal-blog/pkg/config"
	"github.com/NotHarshhaa/personal-blog/pkg/database"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
	"github.com/NotHarshhaa/personal-blog/pkg/queue"
	"github.com/NotHarshhaa/personal-blog/pkg/s3"

	_ "github.com/NotHarshhaa/personal-blog/docs" // Swagger docs
)

// @title           Personal Blog API
// @version         1.0
// @description     Blog platform with posts, likes, views and notifications

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// The API still serves likes without the queue; only notification
	// delivery is affected.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ, notifications disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, redisClient, queueClient, s3Client)
}
