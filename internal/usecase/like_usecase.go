package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/repo/persistent"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
	"github.com/NotHarshhaa/personal-blog/pkg/queue"
)

type LikeUseCase interface {
	ToggleLike(userID, postID string) (bool, []entity.Like, error)
	GetLikes(postID string) ([]entity.Like, error)
	GetLikeCount(postID string) (int64, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// ToggleLike flips the user's like on a post and returns the resulting state
// together with the full like set read back from the database. The returned
// set is the authoritative truth clients reconcile their predictions against.
func (uc *likeUseCase) ToggleLike(userID, postID string) (bool, []entity.Like, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		uc.logger.Error("Failed to check post existence: %v", err)
		return false, nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return false, nil, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
	}

	isLiked, err := uc.likeRepo.IsLiked(userID, postID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return false, nil, fmt.Errorf("failed to check like status: %w", err)
	}

	ctx := context.Background()
	redisKey := fmt.Sprintf("post:likes:%s", postID)

	liked := !isLiked
	if isLiked {
		if err := uc.likeRepo.DeleteLike(userID, postID); err != nil {
			uc.logger.Error("Failed to delete like: %v", err)
			return false, nil, fmt.Errorf("failed to unlike post: %w", err)
		}
	} else {
		if err := uc.likeRepo.CreateLike(userID, postID); err != nil {
			uc.logger.Error("Failed to create like: %v", err)
			return false, nil, fmt.Errorf("failed to like post: %w", err)
		}
		uc.notifyAuthor(userID, postID)
	}

	likes, err := uc.likeRepo.GetLikes(postID)
	if err != nil {
		uc.logger.Error("Failed to load like set: %v", err)
		return liked, nil, fmt.Errorf("failed to load likes: %w", err)
	}

	// The counter is written from the authoritative set, so a cold cache can
	// never drift to a bare increment.
	uc.redisClient.Set(ctx, redisKey, len(likes), 0)
	return liked, likes, nil
}

func (uc *likeUseCase) notifyAuthor(likerID, postID string) {
	authorID, err := uc.postRepo.GetAuthorID(postID)
	if err != nil || authorID == "" || authorID == likerID || uc.queueClient == nil {
		return
	}

	go func() {
		task := map[string]interface{}{
			"type":     "like",
			"user_id":  authorID,
			"liker_id": likerID,
			"post_id":  postID,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish like notification task: %v", err)
		}
	}()
}

func (uc *likeUseCase) GetLikes(postID string) ([]entity.Like, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
	}
	return uc.likeRepo.GetLikes(postID)
}

// GetLikeCount serves the counter from Redis when present and falls back to
// the database, repriming the cache on a miss.
func (uc *likeUseCase) GetLikeCount(postID string) (int64, error) {
	ctx := context.Background()
	redisKey := fmt.Sprintf("post:likes:%s", postID)

	countStr, err := uc.redisClient.Get(ctx, redisKey).Result()
	if err == nil {
		count, _ := strconv.ParseInt(countStr, 10, 64)
		return count, nil
	}

	count, err := uc.likeRepo.GetLikeCount(postID)
	if err != nil {
		return 0, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
	}

	uc.redisClient.Set(ctx, redisKey, count, 0)
	return count, nil
}
