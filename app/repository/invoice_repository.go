package repository

import (
	"gorm.io/gorm"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// invoiceAnalysisRepository implements the InvoiceAnalysisRepository interface
type invoiceAnalysisRepository struct {
	db *gorm.DB
}

// NewInvoiceAnalysisRepository creates a new invoice analysis repository instance
func NewInvoiceAnalysisRepository(db *gorm.DB) InvoiceAnalysisRepository {
	return &invoiceAnalysisRepository{db: db}
}

// Create stores a completed OCR analysis
func (r *invoiceAnalysisRepository) Create(analysis *models.InvoiceAnalysis) error {
	return r.db.Create(analysis).Error
}

// GetByID retrieves an analysis by its ID
func (r *invoiceAnalysisRepository) GetByID(id uint64) (*models.InvoiceAnalysis, error) {
	var analysis models.InvoiceAnalysis
	err := r.db.First(&analysis, id).Error
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// List retrieves analyses with pagination, newest first
func (r *invoiceAnalysisRepository) List(offset, limit int) ([]models.InvoiceAnalysis, error) {
	var analyses []models.InvoiceAnalysis
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&analyses).Error
	return analyses, err
}

// Count returns the total number of stored analyses
func (r *invoiceAnalysisRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.InvoiceAnalysis{}).Count(&count).Error
	return count, err
}
