package ocr

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hazzler78/stromsjef-sub000/app/models"
)

// Extraction is the structured result of one invoice analysis.
type Extraction struct {
	LineItems      []models.InvoiceLineItem `json:"line_items"`
	TotalAmount    float64                  `json:"total_amount"`    // NOK
	ConsumptionKwh float64                  `json:"consumption_kwh"` // 0 = not stated
}

// EffectivePriceOreKwh computes the effective electricity price in øre/kWh
// from invoice total and consumption. Returns 0 when consumption is
// unknown.
func (e *Extraction) EffectivePriceOreKwh() float64 {
	if e.ConsumptionKwh <= 0 {
		return 0
	}
	return e.TotalAmount * 100 / e.ConsumptionKwh
}

// DecodeExtraction parses the model output into an Extraction. Vision
// models routinely wrap JSON in markdown fences despite the prompt, so
// fences are stripped first.
func DecodeExtraction(raw string) (*Extraction, error) {
	cleaned := stripCodeFences(raw)

	var e Extraction
	if err := json.Unmarshal([]byte(cleaned), &e); err != nil {
		return nil, fmt.Errorf("failed to decode extraction: %w", err)
	}

	// A total of 0 with no line items means the model found nothing usable.
	if e.TotalAmount == 0 && len(e.LineItems) == 0 {
		return nil, fmt.Errorf("no invoice data recognized")
	}

	// Fill a missing total from the line items.
	if e.TotalAmount == 0 {
		for _, item := range e.LineItems {
			e.TotalAmount += item.Amount
		}
	}

	return &e, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
