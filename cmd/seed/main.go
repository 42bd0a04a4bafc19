package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NotHarshhaa/personal-blog/internal/model"
	"github.com/NotHarshhaa/personal-blog/pkg/config"
	"github.com/NotHarshhaa/personal-blog/pkg/database"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Harshhaa", "harshhaa@test.com", "password123", "admin"},
		{"Alice", "alice@test.com", "password123", "user"},
		{"Bob", "bob@test.com", "password123", "user"},
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Name:     userData.name,
			Email:    userData.email,
			Password: string(hashedPassword),
			Role:     userData.role,
			Theme:    "system",
		}

		var existing model.UserModel
		if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", user.Email)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}
		log.Info("Created user %s", user.Email)
		userIDs = append(userIDs, user.ID)
	}

	testPosts := []struct {
		title       string
		description string
		content     string
		published   bool
		visibility  string
	}{
		{"Getting Started with Kubernetes", "A practical intro", "## Why Kubernetes\n\nContainers everywhere...", true, "public"},
		{"Terraform in Production", "Lessons learned", "## State management\n\nRemote state first...", true, "public"},
		{"Draft: CI/CD Notes", "Work in progress", "TODO flesh this out", false, "public"},
		{"Internal Runbook", "Private notes", "Secrets rotation steps...", true, "private"},
	}

	for i, postData := range testPosts {
		authorID := userIDs[i%len(userIDs)]

		var existing model.PostModel
		if err := db.Where("title = ?", postData.title).First(&existing).Error; err == nil {
			log.Info("Post %q already exists, skipping", postData.title)
			continue
		}

		post := &model.PostModel{
			AuthorID:    authorID,
			Title:       postData.title,
			Description: postData.description,
			Content:     postData.content,
			Published:   postData.published,
			Visibility:  postData.visibility,
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("failed to create post %q: %w", postData.title, err)
		}
		log.Info("Created post %q", postData.title)

		// Everyone except the author likes the published public posts.
		if post.Published && post.Visibility == "public" {
			for _, userID := range userIDs {
				if userID == authorID {
					continue
				}
				like := &model.LikeModel{UserID: userID, PostID: post.ID}
				if err := db.Create(like).Error; err != nil {
					return fmt.Errorf("failed to create like: %w", err)
				}
			}
		}
	}

	return nil
}
