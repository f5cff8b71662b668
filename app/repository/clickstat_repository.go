package repository

import (
	"gorm.io/gorm"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// clickStatRepository implements the ClickStatRepository interface
type clickStatRepository struct {
	db *gorm.DB
}

// NewClickStatRepository creates a new click stat repository instance
func NewClickStatRepository(db *gorm.DB) ClickStatRepository {
	return &clickStatRepository{db: db}
}

// GetByPlanID retrieves the click total for one plan
func (r *clickStatRepository) GetByPlanID(planID string) (*models.ClickStat, error) {
	var stat models.ClickStat
	err := r.db.Where("plan_id = ?", planID).First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// List returns all click totals, most clicked first
func (r *clickStatRepository) List() ([]models.ClickStat, error) {
	var stats []models.ClickStat
	err := r.db.Order("clicks DESC").Find(&stats).Error
	return stats, err
}

// TotalClicks sums clicks across all plans
func (r *clickStatRepository) TotalClicks() (int64, error) {
	var total int64
	err := r.db.Model(&models.ClickStat{}).Select("COALESCE(SUM(clicks), 0)").Scan(&total).Error
	return total, err
}
