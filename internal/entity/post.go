package entity

import "time"

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Post struct {
	ID          string     `json:"id"`
	AuthorID    string     `json:"author_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Published   bool       `json:"published"`
	Visibility  Visibility `json:"visibility"`
	Views       int64      `json:"views"`
	Likes       []Like     `json:"likes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostUpdate carries the optional content fields of an update. Nil fields are
// left untouched; pointers to empty strings clear the stored value.
type PostUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
}
