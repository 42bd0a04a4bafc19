package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Image     string         `gorm:"type:varchar(500)" json:"image"`
	Bio       string         `json:"bio"`
	Github    string         `gorm:"type:varchar(500)" json:"github"`
	Twitter   string         `gorm:"type:varchar(500)" json:"twitter"`
	Linkedin  string         `gorm:"type:varchar(500)" json:"linkedin"`
	Theme     string         `gorm:"type:varchar(10);default:'system'" json:"theme"`
	Role      string         `gorm:"type:varchar(10);default:'user'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
