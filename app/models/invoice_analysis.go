package models

import (
	"time"

	"gorm.io/datatypes"
)

// InvoiceLineItem is one extracted cost line from an uploaded invoice image.
// Stored embedded in the LineItems JSON column of InvoiceAnalysis.
type InvoiceLineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // NOK, negative for credits/discounts
}

// InvoiceAnalysis persists the result of one invoice OCR run
type InvoiceAnalysis struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	FileName     string         `gorm:"type:varchar(255)" json:"file_name"`
	MimeType     string         `gorm:"type:varchar(64)" json:"mime_type"`
	RawResponse  string         `gorm:"type:text" json:"-"` // unparsed model output, kept for debugging
	LineItems    datatypes.JSON `gorm:"type:json" json:"line_items"`
	TotalAmount  float64        `json:"total_amount"`             // NOK
	ConsumptionKwh float64      `json:"consumption_kwh"`          // 0 when not found on the invoice
	EffectivePrice float64      `json:"effective_price_ore_kwh"`  // øre/kWh, 0 when consumption unknown
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the InvoiceAnalysis model
func (InvoiceAnalysis) TableName() string {
	return "invoice_analyses"
}
