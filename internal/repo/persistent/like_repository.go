package persistent

import (
	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	CreateLike(userID, postID string) error
	DeleteLike(userID, postID string) error
	IsLiked(userID, postID string) (bool, error)
	GetLikes(postID string) ([]entity.Like, error)
	GetLikeCount(postID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// CreateLike inserts a like for the (user, post) pair. A soft-deleted row is
// restored instead of inserted again, and an insert racing another session
// falls through the unique index as a no-op, so the pair never holds more
// than one live row.
func (r *likeRepository) CreateLike(userID, postID string) error {
	var existing model.LikeModel
	err := r.db.Unscoped().Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
	if err == nil {
		if existing.DeletedAt.Valid {
			if err := r.db.Unscoped().Model(&existing).Update("deleted_at", nil).Error; err != nil {
				return err
			}
			return nil
		}
		return nil
	}

	likeModel := &model.LikeModel{
		ID:     uuid.New().String(),
		UserID: userID,
		PostID: postID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(likeModel).Error
}

func (r *likeRepository) DeleteLike(userID, postID string) error {
	return r.db.Unscoped().Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{}).Error
}

func (r *likeRepository) IsLiked(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) GetLikes(postID string) ([]entity.Like, error) {
	var likeModels []model.LikeModel
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&likeModels).Error; err != nil {
		return nil, err
	}

	likes := make([]entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = *ToLikeEntity(&likeModels[i])
	}
	return likes, nil
}

func (r *likeRepository) GetLikeCount(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
