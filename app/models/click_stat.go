package models

import (
	"time"
)

// ClickStat accumulates outbound affiliate-link clicks per plan. Live
// increments happen in Redis and are flushed here in batches.
type ClickStat struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PlanID    string    `gorm:"uniqueIndex;type:varchar(64)" json:"plan_id"`
	Clicks    int64     `gorm:"default:0" json:"clicks"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the ClickStat model
func (ClickStat) TableName() string {
	return "click_stats"
}
