package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialconnect/backend/internal/auth"
	"socialconnect/backend/internal/feed"
	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/social"
	"socialconnect/backend/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(store.NewMemStore(), testSecret)

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	apiV1.POST("/auth/register", h.Register)
	apiV1.POST("/auth/login", h.Login)

	protected := apiV1.Group("")
	protected.Use(auth.Middleware(testSecret))
	protected.GET("/users/:id", h.GetUserByID)
	protected.POST("/posts", h.CreatePost)
	protected.GET("/posts/feed", h.GetFeed)
	protected.GET("/posts/:id", h.GetPost)
	protected.POST("/posts/:id/like", h.LikePost)
	protected.DELETE("/posts/:id/like", h.UnlikePost)
	protected.POST("/friend-requests", h.SendFriendRequest)
	protected.PUT("/friend-requests/:id", h.UpdateFriendRequest)
	protected.GET("/notifications", h.GetNotifications)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, router *gin.Engine, username, name string) AuthResponse {
	t.Helper()
	w := do(t, router, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{
		Username: username,
		Password: "password123",
		Name:     name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	register(t, router, "johndoe", "John Doe")

	// Duplicate username is a conflict.
	w := do(t, router, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{
		Username: "johndoe", Password: "password123", Name: "Other John",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/auth/login", "", LoginInput{
		Username: "johndoe", Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/auth/login", "", LoginInput{
		Username: "johndoe", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/posts/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostLikeNotificationFlow(t *testing.T) {
	router := newTestRouter(t)

	author := register(t, router, "author", "Post Author")
	viewer := register(t, router, "viewer", "Viewer")

	w := do(t, router, http.MethodPost, "/api/v1/posts", author.Token, CreatePostInput{Content: "hello world"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created feed.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, author.User.ID, created.UserID)

	likePath := fmt.Sprintf("/api/v1/posts/%d/like", created.ID)
	w = do(t, router, http.MethodPost, likePath, viewer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var liked feed.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Equal(t, 1, liked.Count.Likes)

	// Liking again changes nothing.
	w = do(t, router, http.MethodPost, likePath, viewer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Equal(t, 1, liked.Count.Likes)

	// Exactly one like notification for the author.
	w = do(t, router, http.MethodGet, "/api/v1/notifications", author.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, models.SourceLike, notifications[0].SourceType)
	assert.Equal(t, "Viewer liked your post", notifications[0].Content)

	// Unlike drops the count without adding notifications.
	w = do(t, router, http.MethodDelete, likePath, viewer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Equal(t, 0, liked.Count.Likes)
}

func TestFriendRequestFlow(t *testing.T) {
	router := newTestRouter(t)

	a := register(t, router, "usera", "User A")
	b := register(t, router, "userb", "User B")

	w := do(t, router, http.MethodPost, "/api/v1/friend-requests", a.Token, FriendRequestInput{ReceiverID: b.User.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var request models.FriendRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &request))
	assert.Equal(t, models.StatusPending, request.Status)

	// B sees pending_received on A's profile.
	w = do(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", a.User.ID), b.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, social.StatusPendingReceived, profile.FriendStatus)

	// B accepts; A is notified.
	w = do(t, router, http.MethodPut, fmt.Sprintf("/api/v1/friend-requests/%d", request.ID), b.Token,
		UpdateRequestInput{Status: models.StatusAccepted})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/v1/notifications", a.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notifications []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, models.SourceRequestAccepted, notifications[0].SourceType)

	// A's feed now shows B's posts.
	w = do(t, router, http.MethodPost, "/api/v1/posts", b.Token, CreatePostInput{Content: "from B"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/posts/feed", a.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var views []feed.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "from B", views[0].Content)
}

func TestUpdateFriendRequest_NotFound(t *testing.T) {
	router := newTestRouter(t)
	a := register(t, router, "usera", "User A")

	w := do(t, router, http.MethodPut, "/api/v1/friend-requests/42", a.Token,
		UpdateRequestInput{Status: models.StatusAccepted})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
