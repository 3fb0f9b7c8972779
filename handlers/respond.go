package handlers

import (
	"net/http"

	"premierlodge/models"

	"github.com/gin-gonic/gin"
)

// respond relays an upstream envelope to the dashboard, preserving its status.
func respond[T any](c *gin.Context, env models.Envelope[T]) {
	status := env.Status
	if status == 0 {
		if env.Success {
			status = http.StatusOK
		} else {
			status = http.StatusBadGateway
		}
	}
	c.JSON(status, env)
}
