package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NotHarshhaa/personal-blog/internal/entity"
	"github.com/NotHarshhaa/personal-blog/internal/usecase"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func actor(c *gin.Context) (string, entity.UserRole) {
	return c.GetString("user_id"), entity.UserRole(c.GetString("role"))
}

type createPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// CreatePost godoc
// @Summary      Create a draft
// @Description  Create a new unpublished post owned by the caller
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createPostRequest true "Post data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	post, err := h.postUseCase.CreatePost(userID, req.Title, req.Description, req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get a post
// @Description  Get a single post. Drafts and private posts require the author or an admin.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")
	viewerID, role := actor(c)

	post, err := h.postUseCase.GetPost(postID, viewerID, role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  List published public posts, newest first
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Number of posts to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, offset := pagination(c)

	posts, err := h.postUseCase.ListPosts(limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts), "offset": offset})
}

// SearchPosts godoc
// @Summary      Search posts
// @Description  Search published public posts by title and description
// @Tags         posts
// @Produce      json
// @Param        q query string true "Search query"
// @Param        limit query int false "Number of posts to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	query := c.Query("q")
	limit, offset := pagination(c)

	posts, err := h.postUseCase.SearchPosts(query, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts), "query": query})
}

// MyPosts godoc
// @Summary      List own posts
// @Description  List the caller's posts, drafts included
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of posts to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/mine [get]
func (h *PostHandler) MyPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := pagination(c)

	posts, err := h.postUseCase.ListMyPosts(userID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts), "offset": offset})
}

// SavePost godoc
// @Summary      Save post content
// @Description  Update title, description or content. Absent fields are left untouched; publish state and visibility cannot be changed here.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body entity.PostUpdate true "Fields to update"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [patch]
func (h *PostHandler) SavePost(c *gin.Context) {
	postID := c.Param("id")
	actorID, role := actor(c)

	var update entity.PostUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.SavePostDraft(postID, actorID, role, update)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// PublishPost godoc
// @Summary      Publish a post
// @Description  Mark a draft as published
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/publish [post]
func (h *PostHandler) PublishPost(c *gin.Context) {
	postID := c.Param("id")
	actorID, role := actor(c)

	post, err := h.postUseCase.PublishPost(postID, actorID, role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

type setVisibilityRequest struct {
	Visibility entity.Visibility `json:"visibility" binding:"required"`
}

// SetVisibility godoc
// @Summary      Change post visibility
// @Description  Switch a post between public and private without touching its publish state
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body setVisibilityRequest true "New visibility"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/visibility [put]
func (h *PostHandler) SetVisibility(c *gin.Context) {
	postID := c.Param("id")
	actorID, role := actor(c)

	var req setVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.SetPostVisibility(postID, actorID, role, req.Visibility)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post. Allowed for the author and admins.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	actorID, role := actor(c)

	if err := h.postUseCase.DeletePost(postID, actorID, role); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
