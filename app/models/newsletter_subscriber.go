package models

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSubscriber represents one email address in the newsletter funnel
type NewsletterSubscriber struct {
	ID          uint64         `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;type:varchar(255)" json:"email" validate:"required,email"`
	Confirmed   bool           `gorm:"type:tinyint(1);default:0" json:"confirmed"`
	ConfirmedAt *time.Time     `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the NewsletterSubscriber model
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
