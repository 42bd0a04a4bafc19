package http

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/usecase"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testLogger() *logger.Logger {
	return logger.New()
}

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(authorID, title, description, content string) (*entity.Post, error) {
	args := m.Called(authorID, title, description, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID, viewerID string, role entity.UserRole) (*entity.Post, error) {
	args := m.Called(postID, viewerID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(limit, offset int) ([]*entity.Post, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) SearchPosts(query string, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListMyPosts(authorID string, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) PublishPost(postID, actorID string, role entity.UserRole) (*entity.Post, error) {
	args := m.Called(postID, actorID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) SetPostVisibility(postID, actorID string, role entity.UserRole, visibility entity.Visibility) (*entity.Post, error) {
	args := m.Called(postID, actorID, role, visibility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) SavePostDraft(postID, actorID string, role entity.UserRole, update entity.PostUpdate) (*entity.Post, error) {
	args := m.Called(postID, actorID, role, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(postID, actorID string, role entity.UserRole) error {
	args := m.Called(postID, actorID, role)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleLike(userID, postID string) (bool, []entity.Like, error) {
	args := m.Called(userID, postID)
	if args.Get(1) == nil {
		return args.Bool(0), nil, args.Error(2)
	}
	return args.Bool(0), args.Get(1).([]entity.Like), args.Error(2)
}

func (m *MockLikeUseCase) GetLikes(postID string) ([]entity.Like, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Like), args.Error(1)
}

func (m *MockLikeUseCase) GetLikeCount(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

type MockViewUseCase struct {
	mock.Mock
}

func (m *MockViewUseCase) TrackView(viewerID, postID string) (bool, int64, error) {
	args := m.Called(viewerID, postID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockViewUseCase) GetViewCount(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.ViewUseCase = (*MockViewUseCase)(nil)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(name, email, password string) (*entity.User, string, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) UpdateSettings(userID string, settings entity.UserSettings) (*entity.User, error) {
	args := m.Called(userID, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	args := m.Called(userID, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) DeleteAccount(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) GetNotifications(userID string, limit, offset int) ([]entity.Notification, int64, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationUseCase) MarkAllRead(userID string) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationUseCase) ClearAll(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockNotificationUseCase) HandleLikeNotification(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)
