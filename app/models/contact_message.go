package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage represents one submission of the public contact form
type ContactMessage struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(100)" json:"name" validate:"required,min=2,max=100"`
	Email     string         `gorm:"type:varchar(255);index" json:"email" validate:"required,email"`
	Message   string         `gorm:"type:text" json:"message" validate:"required,min=10,max=5000"`
	Handled   bool           `gorm:"type:tinyint(1);default:0" json:"handled"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}
