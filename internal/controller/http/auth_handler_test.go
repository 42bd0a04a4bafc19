package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
)

func TestRegister(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	user := &entity.User{ID: "user-1", Name: "Harshhaa", Email: "harshhaa@example.com"}
	mockUseCase.On("Register", "Harshhaa", "harshhaa@example.com", "supersecret").
		Return(user, "jwt-token", nil)

	body, _ := json.Marshal(map[string]string{
		"name":     "Harshhaa",
		"email":    "harshhaa@example.com",
		"password": "supersecret",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp["token"])
}

func TestRegisterValidationError(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	mockUseCase.On("Register", "Harshhaa", "bad-email", "supersecret").
		Return(nil, "", fmt.Errorf("%w: invalid email address", entity.ErrValidation))

	body, _ := json.Marshal(map[string]string{
		"name":     "Harshhaa",
		"email":    "bad-email",
		"password": "supersecret",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInvalidCredentialsIs401(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "harshhaa@example.com", "wrong").
		Return(nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthenticated))

	body, _ := json.Marshal(map[string]string{"email": "harshhaa@example.com", "password": "wrong"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.Me(c)
	})

	user := &entity.User{ID: "user-1", Name: "Harshhaa"}
	mockUseCase.On("GetUser", "user-1").Return(user, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
