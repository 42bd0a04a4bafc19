package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/repo/persistent"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

const maxTitleLength = 100

type PostUseCase interface {
	CreatePost(authorID, title, description, content string) (*entity.Post, error)
	GetPost(postID, viewerID string, role entity.UserRole) (*entity.Post, error)
	ListPosts(limit, offset int) ([]*entity.Post, error)
	SearchPosts(query string, limit, offset int) ([]*entity.Post, error)
	ListMyPosts(authorID string, limit, offset int) ([]*entity.Post, error)
	PublishPost(postID, actorID string, role entity.UserRole) (*entity.Post, error)
	SetPostVisibility(postID, actorID string, role entity.UserRole, visibility entity.Visibility) (*entity.Post, error)
	SavePostDraft(postID, actorID string, role entity.UserRole, update entity.PostUpdate) (*entity.Post, error)
	DeletePost(postID, actorID string, role entity.UserRole) error
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, redisClient *redis.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func validateTitle(title string) error {
	length := utf8.RuneCountInString(title)
	if length == 0 {
		return fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if length > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", entity.ErrValidation, maxTitleLength)
	}
	return nil
}

// CreatePost creates an unpublished public draft.
func (uc *postUseCase) CreatePost(authorID, title, description, content string) (*entity.Post, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	post := &entity.Post{
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Content:     content,
		Published:   false,
		Visibility:  entity.VisibilityPublic,
	}
	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.cachePost(post)
	return post, nil
}

// GetPost returns a post if the viewer may see it. Drafts and private posts
// are visible to their author and to admins only; everyone else gets a not
// found, so hidden posts do not leak their existence.
func (uc *postUseCase) GetPost(postID, viewerID string, role entity.UserRole) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
		}
		uc.logger.Error("Failed to load post: %v", err)
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	hidden := !post.Published || post.Visibility == entity.VisibilityPrivate
	if hidden && post.AuthorID != viewerID && role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
	}
	return post, nil
}

func (uc *postUseCase) ListPosts(limit, offset int) ([]*entity.Post, error) {
	return uc.postRepo.List(limit, offset, "")
}

func (uc *postUseCase) SearchPosts(query string, limit, offset int) ([]*entity.Post, error) {
	return uc.postRepo.List(limit, offset, query)
}

func (uc *postUseCase) ListMyPosts(authorID string, limit, offset int) ([]*entity.Post, error) {
	return uc.postRepo.ListByAuthor(authorID, limit, offset)
}

// authorizedPost loads a post for mutation. Only the author and admins may
// mutate; anyone else gets a forbidden, which the client uses to roll back
// its prediction.
func (uc *postUseCase) authorizedPost(postID, actorID string, role entity.UserRole) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", entity.ErrNotFound, postID)
		}
		uc.logger.Error("Failed to load post: %v", err)
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post.AuthorID != actorID && role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: you can only modify your own posts", entity.ErrForbidden)
	}
	return post, nil
}

// PublishPost flips the draft flag. Visibility and content are untouched.
func (uc *postUseCase) PublishPost(postID, actorID string, role entity.UserRole) (*entity.Post, error) {
	post, err := uc.authorizedPost(postID, actorID, role)
	if err != nil {
		return nil, err
	}

	post.Published = true
	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to publish post: %v", err)
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}

	uc.cachePost(post)
	return post, nil
}

// SetPostVisibility switches a post between public and private. The publish
// flag and content are untouched, so flipping visibility can never
// accidentally publish a draft.
func (uc *postUseCase) SetPostVisibility(postID, actorID string, role entity.UserRole, visibility entity.Visibility) (*entity.Post, error) {
	if visibility != entity.VisibilityPublic && visibility != entity.VisibilityPrivate {
		return nil, fmt.Errorf("%w: visibility must be public or private", entity.ErrValidation)
	}

	post, err := uc.authorizedPost(postID, actorID, role)
	if err != nil {
		return nil, err
	}

	post.Visibility = visibility
	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to change post visibility: %v", err)
		return nil, fmt.Errorf("failed to change visibility: %w", err)
	}

	uc.cachePost(post)
	return post, nil
}

// SavePostDraft updates content fields only. Nil fields are left as they
// are; the publish flag and visibility cannot be reached from here.
func (uc *postUseCase) SavePostDraft(postID, actorID string, role entity.UserRole, update entity.PostUpdate) (*entity.Post, error) {
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return nil, err
		}
	}

	post, err := uc.authorizedPost(postID, actorID, role)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Description != nil {
		post.Description = *update.Description
	}
	if update.Content != nil {
		post.Content = *update.Content
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to save post: %v", err)
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	uc.cachePost(post)
	return post, nil
}

func (uc *postUseCase) DeletePost(postID, actorID string, role entity.UserRole) error {
	if _, err := uc.authorizedPost(postID, actorID, role); err != nil {
		return err
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		uc.logger.Error("Failed to delete post: %v", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	uc.invalidatePost(postID)
	return nil
}

// cachePost refreshes the Redis copy of a post after a write. Best effort,
// readers fall back to Postgres.
func (uc *postUseCase) cachePost(post *entity.Post) {
	ctx := context.Background()
	postKey := fmt.Sprintf("post:%s", post.ID)
	uc.redisClient.HSet(ctx, postKey,
		"id", post.ID,
		"author_id", post.AuthorID,
		"title", post.Title,
		"description", post.Description,
		"published", post.Published,
		"visibility", string(post.Visibility),
	)
	uc.redisClient.Expire(ctx, postKey, 24*time.Hour)
}

func (uc *postUseCase) invalidatePost(postID string) {
	ctx := context.Background()
	uc.redisClient.Del(ctx,
		fmt.Sprintf("post:%s", postID),
		fmt.Sprintf("post:likes:%s", postID),
		fmt.Sprintf("post:views:%s", postID),
	)
}
