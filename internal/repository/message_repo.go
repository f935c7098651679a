package repository

import (
	"github.com/farmlink/internal/models"
	"gorm.io/gorm"
)

// MessageRepository handles message data access
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByReceiverID retrieves a user's inbox in insertion order
func (r *MessageRepository) GetByReceiverID(receiverID uint) ([]models.Message, error) {
	var messages []models.Message
	result := r.db.Where("receiver_id = ?", receiverID).Order("id ASC").Find(&messages)
	return messages, result.Error
}

// GetBySenderID retrieves a user's outbox in insertion order
func (r *MessageRepository) GetBySenderID(senderID uint) ([]models.Message, error) {
	var messages []models.Message
	result := r.db.Where("sender_id = ?", senderID).Order("id ASC").Find(&messages)
	return messages, result.Error
}
