package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NotHarshhaa/personal-blog/internal/usecase"
	"github.com/NotHarshhaa/personal-blog/pkg/logger"
)

type ViewHandler struct {
	viewUseCase usecase.ViewUseCase
	logger      *logger.Logger
}

func NewViewHandler(viewUseCase usecase.ViewUseCase, logger *logger.Logger) *ViewHandler {
	return &ViewHandler{
		viewUseCase: viewUseCase,
		logger:      logger,
	}
}

// viewerKey identifies the reader for view dedupe. Signed-in readers dedupe
// on their user ID, anonymous ones on the client IP.
func viewerKey(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return c.ClientIP()
}

// TrackView godoc
// @Summary      Count a view
// @Description  Count one view per reader per post. Repeat views by the same reader are ignored.
// @Tags         views
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/views [post]
func (h *ViewHandler) TrackView(c *gin.Context) {
	postID := c.Param("id")

	counted, views, err := h.viewUseCase.TrackView(viewerKey(c), postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "View counted"
	if !counted {
		message = "View already counted"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "counted": counted, "views": views})
}

// GetViewCount godoc
// @Summary      Get view count for a post
// @Description  Get the number of views, served from the Redis counter with a database fallback
// @Tags         views
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/views [get]
func (h *ViewHandler) GetViewCount(c *gin.Context) {
	postID := c.Param("id")

	count, err := h.viewUseCase.GetViewCount(postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post_id": postID, "views": count})
}
