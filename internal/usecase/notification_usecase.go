package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/repo/persistent"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

const (
	notificationFeedLimit = 99
	notificationFeedTTL   = 30 * 24 * time.Hour
)

type NotificationUseCase interface {
	GetNotifications(userID string, limit, offset int) ([]entity.Notification, int64, error)
	MarkAllRead(userID string) (int, error)
	ClearAll(userID string) error
	HandleLikeNotification(task map[string]interface{}) error
}

type notificationUseCase struct {
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewNotificationUseCase(userRepo persistent.UserRepository, redisClient *redis.Client, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		userRepo:    userRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func feedKey(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

// GetNotifications returns a page of the user's feed, newest first, plus the
// total feed length.
func (uc *notificationUseCase) GetNotifications(userID string, limit, offset int) ([]entity.Notification, int64, error) {
	ctx := context.Background()
	key := feedKey(userID)

	items, err := uc.redisClient.LRange(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	var notifications []entity.Notification
	for _, item := range items {
		var notification entity.Notification
		if err := json.Unmarshal([]byte(item), &notification); err == nil {
			notifications = append(notifications, notification)
		}
	}

	total, _ := uc.redisClient.LLen(ctx, key).Result()
	return notifications, total, nil
}

// MarkAllRead rewrites every unread entry with the read flag set and returns
// how many entries changed.
func (uc *notificationUseCase) MarkAllRead(userID string) (int, error) {
	ctx := context.Background()
	key := feedKey(userID)

	items, err := uc.redisClient.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	marked := 0
	for i, item := range items {
		var notification entity.Notification
		if err := json.Unmarshal([]byte(item), &notification); err != nil {
			continue
		}
		if notification.Read {
			continue
		}
		notification.Read = true
		updated, err := json.Marshal(notification)
		if err != nil {
			continue
		}
		if err := uc.redisClient.LSet(ctx, key, int64(i), updated).Err(); err != nil {
			uc.logger.Warn("Failed to mark notification read: %v", err)
			continue
		}
		marked++
	}

	return marked, nil
}

func (uc *notificationUseCase) ClearAll(userID string) error {
	ctx := context.Background()
	if err := uc.redisClient.Del(ctx, feedKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}

// HandleLikeNotification consumes a like task from the queue and pushes a
// feed entry for the post's author.
func (uc *notificationUseCase) HandleLikeNotification(task map[string]interface{}) error {
	authorID, _ := task["user_id"].(string)
	likerID, _ := task["liker_id"].(string)
	postID, _ := task["post_id"].(string)

	if authorID == "" || likerID == "" || postID == "" {
		uc.logger.Error("Invalid like task: missing user_id, liker_id or post_id, task=%+v", task)
		return fmt.Errorf("invalid task: missing required fields")
	}

	likerName, err := uc.userRepo.GetName(likerID)
	if err != nil || likerName == "" {
		likerName = "Someone"
	}

	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    authorID,
		Title:     "New Like!",
		Message:   fmt.Sprintf("%s liked your post", likerName),
		Type:      "like",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Data: map[string]interface{}{
			"post_id":  postID,
			"liker_id": likerID,
		},
	}

	if err := uc.pushToFeed(notification); err != nil {
		uc.logger.Error("Failed to store like notification for user %s: %v", authorID, err)
		return err
	}

	uc.logger.Info("Stored like notification for user %s about post %s", authorID, postID)
	return nil
}

// pushToFeed prepends the entry, trims the feed to its cap and refreshes the
// TTL, then publishes the entry for any live subscriber.
func (uc *notificationUseCase) pushToFeed(notification *entity.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx := context.Background()
	key := feedKey(notification.UserID)
	if err := uc.redisClient.LPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	uc.redisClient.LTrim(ctx, key, 0, notificationFeedLimit)
	uc.redisClient.Expire(ctx, key, notificationFeedTTL)

	if err := uc.redisClient.Publish(ctx, key, payload).Err(); err != nil {
		uc.logger.Warn("Failed to publish notification for user %s: %v", notification.UserID, err)
	}
	return nil
}
