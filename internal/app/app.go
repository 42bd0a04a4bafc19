package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	blogHTTP "github.com/NotHarshhaa/personal-blog/internal/controller/http"
	"github.com/NotHarshhaa/personal-blog/internal/repo/persistent"
	"github.com/NotHarshhaa/personal-blog/internal/usecase"
	"github.com/NotHarshhaa/personal-blog/pkg/config"
	"github.com/NotHarshhaa/personal-blog/pkg/jwt"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
	"github.com/NotHarshhaa/personal-blog/pkg/middleware"
	"github.com/NotHarshhaa/personal-blog/pkg/queue"
	"github.com/NotHarshhaa/personal-blog/pkg/s3"
)

// Run wires the application together and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client, s3Client *s3.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	userUseCase := usecase.NewUserUseCase(userRepo, s3Client, log)
	postUseCase := usecase.NewPostUseCase(postRepo, redisClient, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, postRepo, redisClient, queueClient, log)
	viewUseCase := usecase.NewViewUseCase(postRepo, redisClient, log)
	notificationUseCase := usecase.NewNotificationUseCase(userRepo, redisClient, log)

	authHandler := blogHTTP.NewAuthHandler(authUseCase, log)
	userHandler := blogHTTP.NewUserHandler(userUseCase, log)
	postHandler := blogHTTP.NewPostHandler(postUseCase, log)
	likeHandler := blogHTTP.NewLikeHandler(likeUseCase, log)
	viewHandler := blogHTTP.NewViewHandler(viewUseCase, log)
	notificationHandler := blogHTTP.NewNotificationHandler(notificationUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.SiteURL, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Rate limiting runs after auth in each group, so signed-in callers are
	// keyed by user ID rather than client IP.
	rateLimit := middleware.RateLimitMiddleware(redisClient, 100, time.Minute)

	// Public routes. Optional auth lets reads personalize (liked flag) and
	// lets the owner see their own drafts and private posts.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService), rateLimit)
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)

		public.GET("/posts", postHandler.ListPosts)
		public.GET("/posts/search", postHandler.SearchPosts)
		public.GET("/posts/:id", postHandler.GetPost)

		public.GET("/posts/:id/likes", likeHandler.GetLikes)
		public.GET("/posts/:id/likes/count", likeHandler.GetLikeCount)

		public.POST("/posts/:id/views", viewHandler.TrackView)
		public.GET("/posts/:id/views", viewHandler.GetViewCount)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService), rateLimit)
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.POST("/posts", postHandler.CreatePost)
		protected.GET("/posts/mine", postHandler.MyPosts)
		protected.PATCH("/posts/:id", postHandler.SavePost)
		protected.POST("/posts/:id/publish", postHandler.PublishPost)
		protected.PUT("/posts/:id/visibility", postHandler.SetVisibility)
		protected.DELETE("/posts/:id", postHandler.DeletePost)

		protected.POST("/posts/:id/like", likeHandler.ToggleLike)

		protected.PUT("/users/settings", userHandler.UpdateSettings)
		protected.POST("/users/avatar", userHandler.UploadAvatar)
		protected.DELETE("/users/me", userHandler.DeleteAccount)

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.POST("/notifications/read", notificationHandler.MarkAllRead)
		protected.DELETE("/notifications", notificationHandler.ClearAll)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Consume notification tasks published by the like flow.
	if queueClient != nil {
		go func() {
			log.Info("Starting notification queue consumer...")
			err := queueClient.ConsumeNotificationTasks(func(task map[string]interface{}) error {
				taskType, _ := task["type"].(string)
				switch taskType {
				case "like":
					return notificationUseCase.HandleLikeNotification(task)
				default:
					log.Warn("Unknown notification task type: %s, task=%+v", taskType, task)
					return nil
				}
			})
			if err != nil {
				log.Error("Error starting notification queue consumer: %v", err)
			}
		}()
	}

	go func() {
		log.Info("Blog API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Blog API exited")
}
