package usecase

import (
	"fmt"
	"io"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/repo/persistent"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
	"github.com/NotHarshhaa/personal-blog/pkg/s3"
)

type UserUseCase interface {
	UpdateSettings(userID string, settings entity.UserSettings) (*entity.User, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
	DeleteAccount(userID string) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, s3Client *s3.Client, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

// UpdateSettings applies the non-nil fields of a profile update. Email and
// role are not settable from here.
func (uc *userUseCase) UpdateSettings(userID string, settings entity.UserSettings) (*entity.User, error) {
	if settings.Name != nil && *settings.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", entity.ErrValidation)
	}
	if settings.Theme != nil {
		switch *settings.Theme {
		case entity.ThemeSystem, entity.ThemeLight, entity.ThemeDark:
		default:
			return nil, fmt.Errorf("%w: theme must be system, light or dark", entity.ErrValidation)
		}
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	if settings.Name != nil {
		user.Name = *settings.Name
	}
	if settings.Bio != nil {
		user.Bio = *settings.Bio
	}
	if settings.Github != nil {
		user.Github = *settings.Github
	}
	if settings.Twitter != nil {
		user.Twitter = *settings.Twitter
	}
	if settings.Linkedin != nil {
		user.Linkedin = *settings.Linkedin
	}
	if settings.Theme != nil {
		user.Theme = *settings.Theme
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user settings: %v", err)
		return nil, fmt.Errorf("failed to update settings")
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	user.Image = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}

// DeleteAccount removes the user and everything they own.
func (uc *userUseCase) DeleteAccount(userID string) error {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	if err := uc.userRepo.Delete(userID); err != nil {
		uc.logger.Error("Failed to delete account: %v", err)
		return fmt.Errorf("failed to delete account")
	}
	return nil
}
