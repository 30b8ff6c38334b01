package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/logger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetNotifications handles GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {

	clerkID := c.GetString(ClerkIDKey)

	notifications, err := h.notifications.ListByUser(c.Request.Context(), clerkID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

// MarkNotificationRead handles PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Notification id must be numeric"})
		return
	}

	updated, err := h.notifications.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Notification not found"})
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to mark notification read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notification": updated})
}

// MarkAllNotificationsRead handles PATCH /api/notifications/read-all
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {

	clerkID := c.GetString(ClerkIDKey)

	count, err := h.notifications.MarkAllRead(c.Request.Context(), clerkID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to mark notifications read: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updatedCount": count})
}
