package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/store"
)

// FriendRequestInput defines the structure for sending a friend request.
type FriendRequestInput struct {
	ReceiverID uint `json:"receiverId" binding:"required" example:"2"`
}

// UpdateRequestInput defines the structure for answering a friend request.
type UpdateRequestInput struct {
	Status models.RequestStatus `json:"status" binding:"required,oneof=accepted rejected" example:"accepted"`
}

// SendFriendRequest godoc
// @Summary      Send a friend request
// @Description  Sends a friend request to another user. A reverse pending request is auto-accepted instead of duplicated; any other existing request between the pair is returned unchanged.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendRequestInput true "Receiver"
// @Success      201  {object}  models.FriendRequest
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friend-requests [post]
func (h *Handler) SendFriendRequest(c *gin.Context) {
	var input FriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, events, err := h.Graph.CreateFriendRequest(actorID(c), input.ReceiverID, models.StatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create friend request"})
		return
	}
	if err := h.Notifier.Dispatch(events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dispatch notifications"})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// UpdateFriendRequest godoc
// @Summary      Answer a friend request
// @Description  Accepts or rejects a friend request by id. Accepting notifies the original sender.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Friend Request ID"
// @Param        input body      UpdateRequestInput true  "New Status"
// @Success      200  {object}  models.FriendRequest
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /friend-requests/{id} [put]
func (h *Handler) UpdateFriendRequest(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, events, err := h.Graph.UpdateFriendRequest(requestID, input.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update friend request"})
		return
	}
	if err := h.Notifier.Dispatch(events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dispatch notifications"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// GetFriendRequests godoc
// @Summary      List pending friend requests
// @Description  Returns the pending requests addressed to the current user, joined with both users.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   social.RequestView
// @Failure      401  {object}  ErrorResponse
// @Router       /friend-requests [get]
func (h *Handler) GetFriendRequests(c *gin.Context) {
	requests, err := h.Graph.PendingRequests(actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friend requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetFriends godoc
// @Summary      List friends
// @Description  Returns the current user's friends, sorted by id.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *Handler) GetFriends(c *gin.Context) {
	friends, err := h.Graph.Friends(actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	responses := make([]UserResponse, 0, len(friends))
	for _, friend := range friends {
		responses = append(responses, publicUser(friend))
	}
	c.JSON(http.StatusOK, responses)
}
