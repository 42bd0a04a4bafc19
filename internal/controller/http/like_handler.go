package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NotHarshhaa/personal-blog/internal/usecase"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Like a post, or remove the like if it is already set. Returns the full like set so clients can reconcile their predicted state.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	liked, likes, err := h.likeUseCase.ToggleLike(userID, postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Post liked"
	if !liked {
		message = "Post unliked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked, "likes": likes})
}

// GetLikes godoc
// @Summary      Get likes for a post
// @Description  Return the post's like set
// @Tags         likes
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/likes [get]
func (h *LikeHandler) GetLikes(c *gin.Context) {
	postID := c.Param("id")

	likes, err := h.likeUseCase.GetLikes(postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	liked := false
	if userID := c.GetString("user_id"); userID != "" {
		for _, like := range likes {
			if like.UserID == userID {
				liked = true
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"post_id": postID, "likes": likes, "liked": liked})
}

// GetLikeCount godoc
// @Summary      Get like count for a post
// @Description  Get the number of likes, served from the Redis counter with a database fallback
// @Tags         likes
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/likes/count [get]
func (h *LikeHandler) GetLikeCount(c *gin.Context) {
	postID := c.Param("id")

	count, err := h.likeUseCase.GetLikeCount(postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post_id": postID, "likes_count": count})
}
