package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// UserSettings carries the optional fields of a profile update. Nil fields
// are left untouched.
type UserSettings struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Github   *string `json:"github,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
	Theme    *Theme  `json:"theme,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Image     string    `json:"image"`
	Bio       string    `json:"bio"`
	Github    string    `json:"github"`
	Twitter   string    `json:"twitter"`
	Linkedin  string    `json:"linkedin"`
	Theme     Theme     `json:"theme"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
