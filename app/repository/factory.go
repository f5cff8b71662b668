package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles all repository instances
type Repositories struct {
	ContactMessage       ContactMessageRepository
	NewsletterSubscriber NewsletterSubscriberRepository
	InvoiceAnalysis      InvoiceAnalysisRepository
	ClickStat            ClickStatRepository
}

// NewRepositories creates all repositories on one gorm handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		ContactMessage:       NewContactMessageRepository(db),
		NewsletterSubscriber: NewNewsletterSubscriberRepository(db),
		InvoiceAnalysis:      NewInvoiceAnalysisRepository(db),
		ClickStat:            NewClickStatRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the initialized global factory
func GetGlobalFactory() *Factory {
	return globalFactory
}
