package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Sessions  int    `json:"sessions"`
	Timestamp string `json:"timestamp"`
}

// Health godoc
// @Summary Health check
// @Description Liveness plus the number of active widget sessions
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *WebHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Sessions:  h.sessions.Len(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
