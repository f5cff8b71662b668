package ocr

import (
	"math"
	"testing"
)

func TestDecodeExtraction_PlainJSON(t *testing.T) {
	t.Parallel()

	raw := `{"line_items":[{"description":"Strømforbruk","amount":450.5},{"description":"Nettleie","amount":320.0},{"description":"Rabatt","amount":-50.0}],"total_amount":720.5,"consumption_kwh":600}`

	e, err := DecodeExtraction(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(e.LineItems) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(e.LineItems))
	}
	if e.LineItems[2].Amount != -50 {
		t.Fatalf("credit line should stay negative, got %v", e.LineItems[2].Amount)
	}
	if e.TotalAmount != 720.5 {
		t.Fatalf("total = %v, want 720.5", e.TotalAmount)
	}

	want := 720.5 * 100 / 600
	if math.Abs(e.EffectivePriceOreKwh()-want) > 1e-9 {
		t.Fatalf("effective price = %v, want %v", e.EffectivePriceOreKwh(), want)
	}
}

func TestDecodeExtraction_MarkdownFences(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"line_items\":[{\"description\":\"Strøm\",\"amount\":100}],\"total_amount\":100,\"consumption_kwh\":0}\n```"

	e, err := DecodeExtraction(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.EffectivePriceOreKwh() != 0 {
		t.Fatalf("effective price must be 0 without consumption, got %v", e.EffectivePriceOreKwh())
	}
}

func TestDecodeExtraction_TotalFilledFromLines(t *testing.T) {
	t.Parallel()

	raw := `{"line_items":[{"description":"A","amount":60},{"description":"B","amount":40}],"total_amount":0,"consumption_kwh":0}`

	e, err := DecodeExtraction(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.TotalAmount != 100 {
		t.Fatalf("total = %v, want 100 (summed from lines)", e.TotalAmount)
	}
}

func TestDecodeExtraction_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := DecodeExtraction("the invoice shows a total of 720 NOK"); err == nil {
		t.Fatalf("expected error for non-JSON output")
	}
	if _, err := DecodeExtraction(`{"line_items":[],"total_amount":0,"consumption_kwh":0}`); err == nil {
		t.Fatalf("expected error for empty extraction")
	}
}
