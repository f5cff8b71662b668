package repository

import (
	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// ContactMessageRepository defines the interface for contact form storage
type ContactMessageRepository interface {
	Create(msg *models.ContactMessage) error
	GetByID(id uint64) (*models.ContactMessage, error)
	List(offset, limit int) ([]models.ContactMessage, error)
	Count() (int64, error)
	MarkHandled(id uint64) error
	Delete(id uint64) error
}

// NewsletterSubscriberRepository defines the interface for subscriber storage
type NewsletterSubscriberRepository interface {
	Create(sub *models.NewsletterSubscriber) error
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	Confirm(email string) error
	List(offset, limit int) ([]models.NewsletterSubscriber, error)
	Count() (int64, error)
	Delete(id uint64) error
}

// InvoiceAnalysisRepository defines the interface for OCR result storage
type InvoiceAnalysisRepository interface {
	Create(analysis *models.InvoiceAnalysis) error
	GetByID(id uint64) (*models.InvoiceAnalysis, error)
	List(offset, limit int) ([]models.InvoiceAnalysis, error)
	Count() (int64, error)
}

// ClickStatRepository defines the interface for affiliate click totals
type ClickStatRepository interface {
	GetByPlanID(planID string) (*models.ClickStat, error)
	List() ([]models.ClickStat, error)
	TotalClicks() (int64, error)
}
