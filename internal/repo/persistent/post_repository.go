package persistent

import (
	"time"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	Exists(id string) (bool, error)
	GetAuthorID(id string) (string, error)
	List(limit, offset int, query string) ([]*entity.Post, error)
	ListByAuthor(authorID string, limit, offset int) ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
	IncrementViews(id string) error
	GetViews(id string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Preload("Likes").Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *postRepository) GetAuthorID(id string) (string, error) {
	var authorID string
	if err := r.db.Model(&model.PostModel{}).Select("author_id").Where("id = ?", id).Scan(&authorID).Error; err != nil {
		return "", err
	}
	return authorID, nil
}

// List returns published public posts, newest first. A non-empty query
// filters on title and description.
func (r *postRepository) List(limit, offset int, query string) ([]*entity.Post, error) {
	tx := r.db.Preload("Likes").
		Where("published = ? AND visibility = ?", true, string(entity.VisibilityPublic)).
		Order("created_at DESC")

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}

	var postModels []model.PostModel
	if err := tx.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(authorID string, limit, offset int) ([]*entity.Post, error) {
	tx := r.db.Preload("Likes").
		Where("author_id = ?", authorID).
		Order("created_at DESC")

	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}

	var postModels []model.PostModel
	if err := tx.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	postModel.UpdatedAt = time.Now()
	return r.db.Save(postModel).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.PostModel{}).Error
}

func (r *postRepository) IncrementViews(id string) error {
	return r.db.Model(&model.PostModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

func (r *postRepository) GetViews(id string) (int64, error) {
	var views int64
	if err := r.db.Model(&model.PostModel{}).Select("views").Where("id = ?", id).Scan(&views).Error; err != nil {
		return 0, err
	}
	return views, nil
}
