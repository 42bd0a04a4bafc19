package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID    string         `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string         `gorm:"type:varchar(100);not null" json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	Published   bool           `gorm:"default:false;index" json:"published"`
	Visibility  string         `gorm:"type:varchar(10);default:'public'" json:"visibility"`
	Views       int64          `gorm:"default:0" json:"views"`
	Likes       []LikeModel    `gorm:"foreignKey:PostID" json:"likes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
