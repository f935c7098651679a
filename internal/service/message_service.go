package service

import (
	"context"
	"errors"
	"strings"

	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/repository"
)

var (
	ErrEmptyMessage     = errors.New("message content must not be empty")
	ErrReceiverNotFound = errors.New("receiver not found")
)

// MessageService handles the direct messaging log
type MessageService struct {
	messageRepo *repository.MessageRepository
	userRepo    *repository.UserRepository
	notifier    MessageNotifier
}

// NewMessageService creates a new MessageService. The notifier may be nil
// when no live feed is wired (tests, offline tools).
func NewMessageService(messageRepo *repository.MessageRepository, userRepo *repository.UserRepository, notifier MessageNotifier) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// SendMessageRequest represents the send message request
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Send persists a message from the current user to receiverID. The receiver
// must exist. Sending to oneself is not rejected.
func (s *MessageService) Send(ctx context.Context, currentUser *models.User, receiverID uint, req *SendMessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.userRepo.GetByID(receiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, err
	}

	message := &models.Message{
		SenderID:   currentUser.ID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// Delivery to live subscribers is best effort; the message is
		// already committed.
		_ = s.notifier.Publish(ctx, message)
	}

	return message, nil
}

// Inbox returns messages received by the user, oldest first
func (s *MessageService) Inbox(userID uint) ([]models.Message, error) {
	return s.messageRepo.GetByReceiverID(userID)
}

// Outbox returns messages sent by the user, oldest first
func (s *MessageService) Outbox(userID uint) ([]models.Message, error) {
	return s.messageRepo.GetBySenderID(userID)
}
