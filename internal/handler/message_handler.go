package handler

import (
	"errors"
	"strconv"

	"github.com/farmlink/internal/middleware"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/pkg/response"
	"github.com/gin-gonic/gin"
)

// MessageHandler handles the direct messaging routes
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// ShowSendMessage handles the compose page
// GET /send_message/:receiver_id
func (h *MessageHandler) ShowSendMessage(c *gin.Context) {
	receiverID, err := strconv.ParseUint(c.Param("receiver_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid receiver id")
		return
	}
	response.Success(c, gin.H{"receiver_id": receiverID})
}

// SendMessage handles message sending
// POST /send_message/:receiver_id
func (h *MessageHandler) SendMessage(c *gin.Context) {
	user := middleware.GetUser(c)

	receiverID, err := strconv.ParseUint(c.Param("receiver_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid receiver id")
		return
	}

	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), user, uint(receiverID), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			response.BadRequest(c, "message content must not be empty")
			return
		}
		if errors.Is(err, service.ErrReceiverNotFound) {
			response.NotFound(c, "receiver not found")
			return
		}
		response.InternalError(c, "failed to send message")
		return
	}

	response.Created(c, gin.H{
		"message":  message,
		"redirect": "/messages",
	})
}

// Messages handles the combined inbox and outbox view
// GET /messages
func (h *MessageHandler) Messages(c *gin.Context) {
	user := middleware.GetUser(c)

	received, err := h.messageService.Inbox(user.ID)
	if err != nil {
		response.InternalError(c, "failed to load messages")
		return
	}

	sent, err := h.messageService.Outbox(user.ID)
	if err != nil {
		response.InternalError(c, "failed to load messages")
		return
	}

	response.Success(c, gin.H{
		"received": received,
		"sent":     sent,
	})
}

// RegisterRoutes registers message routes
func (h *MessageHandler) RegisterRoutes(r gin.IRouter, authMiddleware gin.HandlerFunc) {
	r.GET("/send_message/:receiver_id", authMiddleware, h.ShowSendMessage)
	r.POST("/send_message/:receiver_id", authMiddleware, h.SendMessage)
	r.GET("/messages", authMiddleware, h.Messages)
}
