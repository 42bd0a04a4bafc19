// Package client is a small Go SDK for the blog API. It is what the server's
// own tooling uses to talk to a running instance, and it carries the
// optimistic wrappers for the interactions the web UI predicts locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken stores the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Authenticated reports whether the client holds a token. It says nothing
// about whether the token is still valid; the server decides that.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

type apiError struct {
	Error string `json:"error"`
}

// do issues a JSON request and decodes the response into out. Error statuses
// are mapped back onto the entity sentinels so callers can branch with
// errors.Is the same way server code does.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return statusError(resp.StatusCode, apiErr.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func statusError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", entity.ErrUnauthenticated, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", entity.ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", entity.ErrNotFound, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", entity.ErrValidation, message)
	default:
		return fmt.Errorf("%w (%d): %s", entity.ErrServer, status, message)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// GetPost fetches a single post. Drafts and private posts come back only for
// an authorized viewer.
func (c *Client) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts/"+postID, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

type LikeResponse struct {
	Liked bool          `json:"liked"`
	Likes []entity.Like `json:"likes"`
}

// ToggleLike flips the caller's like on a post and returns the authoritative
// like set.
func (c *Client) ToggleLike(ctx context.Context, postID string) (*LikeResponse, error) {
	var resp LikeResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/posts/"+postID+"/like", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublishPost marks a draft as published.
func (c *Client) PublishPost(ctx context.Context, postID string) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, http.MethodPost, "/api/v1/posts/"+postID+"/publish", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

type visibilityRequest struct {
	Visibility entity.Visibility `json:"visibility"`
}

// SetPostVisibility switches a post between public and private.
func (c *Client) SetPostVisibility(ctx context.Context, postID string, visibility entity.Visibility) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, http.MethodPut, "/api/v1/posts/"+postID+"/visibility", visibilityRequest{Visibility: visibility}, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// SavePostDraft updates content fields without touching publish state or
// visibility. Nil fields in the update are left untouched.
func (c *Client) SavePostDraft(ctx context.Context, postID string, update entity.PostUpdate) (*entity.Post, error) {
	var post entity.Post
	if err := c.do(ctx, http.MethodPatch, "/api/v1/posts/"+postID, update, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
