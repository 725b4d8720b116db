package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/store"
)

// CreatePostInput defines the structure for creating a post.
type CreatePostInput struct {
	Content  string `json:"content" binding:"required" example:"Hello world"`
	ImageURL string `json:"imageUrl" example:"https://example.com/photo.jpg"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Publishes a new post authored by the current user and returns its full projection.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreatePostInput true "Post Content"
// @Success      201  {object}  feed.PostView
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.Post{
		UserID:   actorID(c),
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}
	if err := h.Store.CreatePost(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	view, err := h.Feed.Post(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetFeed godoc
// @Summary      Get home feed
// @Description  Returns the posts visible to the current user (own posts plus friends'), newest first.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   feed.PostView
// @Failure      401  {object}  ErrorResponse
// @Router       /posts/feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	views, err := h.Feed.HomeFeed(actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose feed"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetPost godoc
// @Summary      Get a post
// @Description  Returns the full projection of a single post.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  feed.PostView
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
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

// GetUserPosts godoc
// @Summary      Get a user's posts
// @Description  Returns every post authored by the given user, newest first. Profile posts are public to any authenticated viewer.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   feed.PostView
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/{id}/posts [get]
func (h *Handler) GetUserPosts(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	views, err := h.Feed.UserPosts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, views)
}
