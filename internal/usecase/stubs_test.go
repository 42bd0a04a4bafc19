package usecase

import (
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

type postRepoStub struct {
	posts map[string]*entity.Post
}

func newPostRepoStub(posts ...*entity.Post) *postRepoStub {
	stub := &postRepoStub{posts: make(map[string]*entity.Post)}
	for _, p := range posts {
		stub.posts[p.ID] = p
	}
	return stub
}

func (s *postRepoStub) Create(post *entity.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *postRepoStub) GetByID(id string) (*entity.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

func (s *postRepoStub) Exists(id string) (bool, error) {
	_, ok := s.posts[id]
	return ok, nil
}

func (s *postRepoStub) GetAuthorID(id string) (string, error) {
	post, ok := s.posts[id]
	if !ok {
		return "", nil
	}
	return post.AuthorID, nil
}

func (s *postRepoStub) List(limit, offset int, query string) ([]*entity.Post, error) {
	var out []*entity.Post
	for _, p := range s.posts {
		if p.Published && p.Visibility == entity.VisibilityPublic {
			copied := *p
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *postRepoStub) ListByAuthor(authorID string, limit, offset int) ([]*entity.Post, error) {
	var out []*entity.Post
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *postRepoStub) Update(post *entity.Post) error {
	if _, ok := s.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	post.UpdatedAt = time.Now()
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *postRepoStub) Delete(id string) error {
	delete(s.posts, id)
	return nil
}

func (s *postRepoStub) IncrementViews(id string) error {
	if post, ok := s.posts[id]; ok {
		post.Views++
	}
	return nil
}

func (s *postRepoStub) GetViews(id string) (int64, error) {
	if post, ok := s.posts[id]; ok {
		return post.Views, nil
	}
	return 0, gorm.ErrRecordNotFound
}

type likeRepoStub struct {
	likes map[string]map[string]entity.Like
}

func newLikeRepoStub() *likeRepoStub {
	return &likeRepoStub{likes: make(map[string]map[string]entity.Like)}
}

func (s *likeRepoStub) CreateLike(userID, postID string) error {
	if s.likes[postID] == nil {
		s.likes[postID] = make(map[string]entity.Like)
	}
	if _, ok := s.likes[postID][userID]; ok {
		// The unique index makes a duplicate insert a no-op.
		return nil
	}
	s.likes[postID][userID] = entity.Like{
		ID:        uuid.New().String(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	return nil
}

func (s *likeRepoStub) DeleteLike(userID, postID string) error {
	delete(s.likes[postID], userID)
	return nil
}

func (s *likeRepoStub) IsLiked(userID, postID string) (bool, error) {
	_, ok := s.likes[postID][userID]
	return ok, nil
}

func (s *likeRepoStub) GetLikes(postID string) ([]entity.Like, error) {
	var out []entity.Like
	for _, like := range s.likes[postID] {
		out = append(out, like)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *likeRepoStub) GetLikeCount(postID string) (int64, error) {
	return int64(len(s.likes[postID])), nil
}

type userRepoStub struct {
	users map[string]*entity.User
}

func newUserRepoStub(users ...*entity.User) *userRepoStub {
	stub := &userRepoStub{users: make(map[string]*entity.User)}
	for _, u := range users {
		stub.users[u.ID] = u
	}
	return stub
}

func (s *userRepoStub) Create(user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *userRepoStub) GetByEmail(email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *userRepoStub) GetByID(id string) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *userRepoStub) Update(user *entity.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *userRepoStub) Delete(id string) error {
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) GetName(id string) (string, error) {
	if user, ok := s.users[id]; ok {
		return user.Name, nil
	}
	return "", nil
}

func testLogger() *logger.Logger {
	return logger.New()
}

func strPtr(s string) *string {
	return &s
}
