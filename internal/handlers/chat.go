package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reda-h/wellness-companion/internal/dto"
	apierrors "github.com/reda-h/wellness-companion/internal/errors"
	"github.com/reda-h/wellness-companion/internal/services"
)

// ChatHandler exposes the wellness assistant.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat answers a single user message.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		apierrors.BadRequest(c, "Message is required")
		return
	}

	reply := h.chatService.Reply(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
