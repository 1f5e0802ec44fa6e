package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/metrics"
)

// HandleChat answers the site's chat widget from the keyword table.
// Expects {"message": "..."} and returns {"success": true, "message": reply}.
func (h *Handler) HandleChat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Message cannot be empty"})
		return
	}

	reply := h.Chat.Reply(req.Message)
	metrics.ChatReplies.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": reply})
}
