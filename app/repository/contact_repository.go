package repository

import (
	"gorm.io/gorm"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// contactMessageRepository implements the ContactMessageRepository interface
type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact message repository instance
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

// Create stores a new contact form submission
func (r *contactMessageRepository) Create(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

// GetByID retrieves a contact message by its ID
func (r *contactMessageRepository) GetByID(id uint64) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.db.First(&msg, id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// List retrieves contact messages with pagination, newest first
func (r *contactMessageRepository) List(offset, limit int) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&msgs).Error
	return msgs, err
}

// Count returns the total number of contact messages
func (r *contactMessageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}

// MarkHandled flags a message as dealt with
func (r *contactMessageRepository) MarkHandled(id uint64) error {
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("handled", true).Error
}

// Delete soft deletes a contact message by its ID
func (r *contactMessageRepository) Delete(id uint64) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
