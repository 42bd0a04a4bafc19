package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/repo/persistent"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

type ViewUseCase interface {
	TrackView(viewerID, postID string) (bool, int64, error)
	GetViewCount(postID string) (int64, error)
}

type viewUseCase struct {
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewViewUseCase(postRepo persistent.PostRepository, redisClient *redis.Client, logger *logger.Logger) ViewUseCase {
	return &viewUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// TrackView counts one view per viewer per post and returns the resulting
// view count. The viewer key is a user ID for authenticated readers and the
// client IP otherwise. Dedupe lives in Redis; the counter itself lives in the
// posts row so it survives restarts.
func (uc *viewUseCase) TrackView(viewerID, postID string) (bool, int64, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		uc.logger.Error("Failed to check post existence: %v", err)
		return false, 0, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return false, 0, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
	}

	ctx := context.Background()
	viewKey := fmt.Sprintf("post_viewed:%s:%s", postID, viewerID)
	countKey := fmt.Sprintf("post:views:%s", postID)

	set, err := uc.redisClient.SetNX(ctx, viewKey, "1", 365*24*time.Hour).Result()
	if err != nil {
		uc.logger.Error("Failed to set view key in Redis: %v", err)
		return false, 0, fmt.Errorf("failed to track view: %w", err)
	}
	if !set {
		views, err := uc.GetViewCount(postID)
		return false, views, err
	}

	if err := uc.postRepo.IncrementViews(postID); err != nil {
		uc.logger.Error("Failed to increment views: %v", err)
		return false, 0, fmt.Errorf("failed to increment views: %w", err)
	}

	views, err := uc.postRepo.GetViews(postID)
	if err != nil {
		uc.logger.Error("Failed to read views: %v", err)
		return true, 0, fmt.Errorf("failed to read views: %w", err)
	}
	uc.redisClient.Set(ctx, countKey, views, 0)
	return true, views, nil
}

func (uc *viewUseCase) GetViewCount(postID string) (int64, error) {
	ctx := context.Background()
	countKey := fmt.Sprintf("post:views:%s", postID)

	countStr, err := uc.redisClient.Get(ctx, countKey).Result()
	if err == nil {
		count, _ := strconv.ParseInt(countStr, 10, 64)
		return count, nil
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil || !exists {
		return 0, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
	}

	count, err := uc.postRepo.GetViews(postID)
	if err != nil {
		return 0, fmt.Errorf("failed to read views: %w", err)
	}

	uc.redisClient.Set(ctx, countKey, count, 0)
	return count, nil
}
