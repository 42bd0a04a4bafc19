package persistent

import (
	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Image:     m.Image,
		Bio:       m.Bio,
		Github:    m.Github,
		Twitter:   m.Twitter,
		Linkedin:  m.Linkedin,
		Theme:     entity.Theme(m.Theme),
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		Image:     e.Image,
		Bio:       e.Bio,
		Github:    e.Github,
		Twitter:   e.Twitter,
		Linkedin:  e.Linkedin,
		Theme:     string(e.Theme),
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	likes := make([]entity.Like, len(m.Likes))
	for i := range m.Likes {
		likes[i] = *ToLikeEntity(&m.Likes[i])
	}

	return &entity.Post{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		Published:   m.Published,
		Visibility:  entity.Visibility(m.Visibility),
		Views:       m.Views,
		Likes:       likes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		AuthorID:    e.AuthorID,
		Title:       e.Title,
		Description: e.Description,
		Content:     e.Content,
		Published:   e.Published,
		Visibility:  string(e.Visibility),
		Views:       e.Views,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}
