package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
)

func TestToggleLikeReturnsLikeSet(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	likes := []entity.Like{{ID: "like-1", UserID: "user-123", PostID: "post-123"}}
	mockUseCase.On("ToggleLike", "user-123", "post-123").Return(true, likes, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["liked"])
	assert.Equal(t, "Post liked", resp["message"])
	assert.Len(t, resp["likes"], 1)
	mockUseCase.AssertExpectations(t)
}

func TestToggleLikeUnlike(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "post-123").Return(false, []entity.Like{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["liked"])
	assert.Equal(t, "Post unliked", resp["message"])
}

func TestToggleLikeMissingPostIs404(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "missing").
		Return(false, nil, fmt.Errorf("%w: post missing", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/missing/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLikesMarksCallerLike(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.GET("/posts/:id/likes", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetLikes(c)
	})

	likes := []entity.Like{
		{ID: "like-1", UserID: "user-123", PostID: "post-123"},
		{ID: "like-2", UserID: "user-456", PostID: "post-123"},
	}
	mockUseCase.On("GetLikes", "post-123").Return(likes, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123/likes", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["liked"])
	assert.Len(t, resp["likes"], 2)
}

func TestGetLikeCount(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.GET("/posts/:id/likes/count", handler.GetLikeCount)

	mockUseCase.On("GetLikeCount", "post-123").Return(int64(42), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123/likes/count", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["likes_count"])
}
