package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
)

func draftPost() entity.Post {
	return entity.Post{
		ID:         testPostID,
		AuthorID:   testUserID,
		Title:      "hello",
		Content:    "draft body",
		Published:  false,
		Visibility: entity.VisibilityPublic,
	}
}

func TestPostEditorPublishNavigatesOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/posts/"+testPostID+"/publish", r.URL.Path)
		post := draftPost()
		post.Published = true
		_ = json.NewEncoder(w).Encode(post)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("token")
	editor := NewPostEditor(c, draftPost())

	post, outcome, err := editor.Publish(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, OutcomeNavigate, outcome)
	assert.True(t, post.Published)
	assert.True(t, editor.Post().Published)
}

func TestPostEditorSetVisibilityClosesDialog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/posts/"+testPostID+"/visibility", r.URL.Path)

		var req visibilityRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, entity.VisibilityPrivate, req.Visibility)

		post := draftPost()
		post.Visibility = entity.VisibilityPrivate
		_ = json.NewEncoder(w).Encode(post)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("token")
	editor := NewPostEditor(c, draftPost())

	post, outcome, err := editor.SetVisibility(context.Background(), entity.VisibilityPrivate)

	assert.NoError(t, err)
	assert.Equal(t, OutcomeCloseDialog, outcome)
	assert.Equal(t, entity.VisibilityPrivate, post.Visibility)
	// Publish state was never touched by a visibility change.
	assert.False(t, post.Published)
}

func TestPostEditorSaveDraftToastsAndKeepsOtherFields(t *testing.T) {
	newTitle := "updated title"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/posts/"+testPostID, r.URL.Path)

		var update entity.PostUpdate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		assert.Equal(t, newTitle, *update.Title)
		assert.Nil(t, update.Content)

		post := draftPost()
		post.Title = newTitle
		_ = json.NewEncoder(w).Encode(post)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("token")
	editor := NewPostEditor(c, draftPost())

	post, outcome, err := editor.SaveDraft(context.Background(), entity.PostUpdate{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, OutcomeToast, outcome)
	assert.Equal(t, newTitle, post.Title)
	assert.Equal(t, "draft body", post.Content)
	assert.False(t, post.Published)
}

func TestPostEditorRollsBackOnForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "you can only edit your own posts"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("token")
	editor := NewPostEditor(c, draftPost())

	post, outcome, err := editor.Publish(context.Background())

	assert.ErrorIs(t, err, entity.ErrForbidden)
	assert.Equal(t, OutcomeNone, outcome)
	assert.False(t, post.Published)
	assert.Equal(t, draftPost().Title, editor.Post().Title)
}

func TestPostEditorRejectsUnauthenticatedMutation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent without a token")
	}))
	defer srv.Close()

	c := New(srv.URL)
	editor := NewPostEditor(c, draftPost())

	_, outcome, err := editor.Publish(context.Background())

	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
	assert.Equal(t, OutcomeNone, outcome)
	assert.False(t, editor.Post().Published)
}
