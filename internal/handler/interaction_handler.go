package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialconnect/backend/internal/store"
)

// CreateCommentInput defines the structure for commenting on a post.
type CreateCommentInput struct {
	Content string `json:"content" binding:"required" example:"Great post!"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Description  Appends a comment and returns the refreshed post projection. Commenting on someone else's post notifies the author.
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Post ID"
// @Param        input body      CreateCommentInput true  "Comment Content"
// @Success      201  {object}  feed.PostView
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, events, err := h.Interactions.CreateComment(postID, actorID(c), input.Content)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	if err := h.Notifier.Dispatch(events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dispatch notifications"})
		return
	}

	view, err := h.Feed.Post(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// LikePost godoc
// @Summary      Like a post
// @Description  Likes a post on behalf of the current user. Liking twice is a no-op returning the existing state.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  feed.PostView
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/like [post]
func (h *Handler) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, events, err := h.Interactions.CreateLike(postID, actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}
	if err := h.Notifier.Dispatch(events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dispatch notifications"})
		return
	}

	view, err := h.Feed.Post(postID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UnlikePost godoc
// @Summary      Unlike a post
// @Description  Removes the current user's like from a post. Removing a like that does not exist is not an error.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  feed.PostView
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/like [delete]
func (h *Handler) UnlikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Interactions.RemoveLike(postID, actorID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}

	view, err := h.Feed.Post(postID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	c.JSON(http.StatusOK, view)
}
