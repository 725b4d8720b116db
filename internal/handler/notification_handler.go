package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialconnect/backend/internal/store"
)

// GetNotifications godoc
// @Summary      List notifications
// @Description  Returns the current user's notifications, newest first.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Notification
// @Failure      401  {object}  ErrorResponse
// @Router       /notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	notifications, err := h.Notifier.ForUser(actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead godoc
// @Summary      Mark a notification as read
// @Description  Sets the read flag on a notification and returns the updated record. Read is terminal.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  models.Notification
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	notification, err := h.Notifier.MarkRead(notificationID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, notification)
}
