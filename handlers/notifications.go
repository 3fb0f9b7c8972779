package handlers

import (
	"net/http"

	"premierlodge/services/notification"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Notifier *notification.DefaultNotifier
}

func NewNotificationHandler(notifier *notification.DefaultNotifier) *NotificationHandler {
	return &NotificationHandler{Notifier: notifier}
}

// Feed returns the retained notices in arrival order.
func (h *NotificationHandler) Feed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.Notifier.Feed()})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
