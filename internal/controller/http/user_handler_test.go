package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
)

func asUser(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", "user")
		handler(c)
	}
}

func TestUpdateSettings(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.PUT("/users/settings", asUser(handler.UpdateSettings))

	updated := &entity.User{ID: "user-1", Name: "Harshhaa", Bio: "platform engineer"}
	mockUseCase.On("UpdateSettings", "user-1",
		mock.MatchedBy(func(s entity.UserSettings) bool {
			return s.Bio != nil && *s.Bio == "platform engineer" && s.Name == nil
		})).Return(updated, nil)

	body, _ := json.Marshal(map[string]string{"bio": "platform engineer"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUploadAvatarRequiresFile(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/users/avatar", asUser(handler.UploadAvatar))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/avatar", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UploadAvatar")
}

func TestDeleteAccount(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.DELETE("/users/me", asUser(handler.DeleteAccount))

	mockUseCase.On("DeleteAccount", "user-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
