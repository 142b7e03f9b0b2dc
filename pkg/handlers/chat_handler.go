package handlers

import (
	"net/http"

	"tagalog-nlp-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the conversation practice endpoints.
type ChatHandler struct {
	conversation *services.ConversationService
}

// NewChatHandler creates the handler over the conversation service.
func NewChatHandler(conversation *services.ConversationService) *ChatHandler {
	return &ChatHandler{conversation: conversation}
}

// Chat handles one conversation turn. The session ID travels in the body
// (or is assigned on the first turn and echoed back).
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide a message")
		return
	}

	reply := h.conversation.Respond(c.Request.Context(), req.SessionID, req.Message)
	c.JSON(http.StatusOK, reply)
}

// Summary returns the session's accumulated entities and log.
func (h *ChatHandler) Summary(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		respondError(c, http.StatusBadRequest, "Please provide a session_id")
		return
	}

	summary, ok := h.conversation.Summary(sessionID)
	if !ok {
		respondError(c, http.StatusNotFound, "Unknown session")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Reset discards a session's state.
func (h *ChatHandler) Reset(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide a session_id")
		return
	}

	h.conversation.Reset(req.SessionID)
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
