// Package chat answers visitor questions from a fixed, ordered keyword
// table. Each query is independent; no conversation state is kept.
package chat

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oldoaktown/backend/pkg/response"
)

// Respond returns the canned response for the first rule whose pattern
// list contains a substring of the lowercased query, or Fallback when
// nothing matches.
func Respond(query string) string {
	lower := strings.ToLower(query)
	for _, rule := range Rules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(lower, pattern) {
				return rule.Response
			}
		}
	}
	return Fallback
}

// MessageRequest is the body for POST /api/chat.
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// Handler serves the chat widget endpoint.
type Handler struct{}

// NewHandler creates a chat handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Message handles POST /api/chat.
func (h *Handler) Message(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "message is required")
		return
	}
	response.OK(c, gin.H{"reply": Respond(req.Message)})
}
