package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// newsletterSubscriberRepository implements the NewsletterSubscriberRepository interface
type newsletterSubscriberRepository struct {
	db *gorm.DB
}

// NewNewsletterSubscriberRepository creates a new subscriber repository instance
func NewNewsletterSubscriberRepository(db *gorm.DB) NewsletterSubscriberRepository {
	return &newsletterSubscriberRepository{db: db}
}

// Create stores a new newsletter subscriber
func (r *newsletterSubscriberRepository) Create(sub *models.NewsletterSubscriber) error {
	return r.db.Create(sub).Error
}

// GetByEmail retrieves a subscriber by email address
func (r *newsletterSubscriberRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := r.db.Where("email = ?", email).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Confirm marks a subscriber as confirmed
func (r *newsletterSubscriberRepository) Confirm(email string) error {
	now := time.Now()
	return r.db.Model(&models.NewsletterSubscriber{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{"confirmed": true, "confirmed_at": &now}).Error
}

// List retrieves subscribers with pagination, newest first
func (r *newsletterSubscriberRepository) List(offset, limit int) ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&subs).Error
	return subs, err
}

// Count returns the total number of subscribers
func (r *newsletterSubscriberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsletterSubscriber{}).Count(&count).Error
	return count, err
}

// Delete soft deletes a subscriber by ID
func (r *newsletterSubscriberRepository) Delete(id uint64) error {
	return r.db.Delete(&models.NewsletterSubscriber{}, id).Error
}
