package controllers

import (
	"encoding/json"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/upload"
)

// Invoice photos above this size are rejected before OCR.
const maxInvoiceSize = 10 << 20 // 10 MiB

// HandleInvoiceAnalyzer renders the invoice upload page.
func HandleInvoiceAnalyzer(c *fiber.Ctx) error {
	return render(c, "invoice", fiber.Map{
		"Title": "Fakturasjekk",
	})
}

// HandleInvoiceAnalyze runs one uploaded invoice image through the vision
// model and renders the extracted cost lines.
func HandleInvoiceAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("invoice")
	if err != nil {
		return flashError(c, "/faktura", "Last opp et bilde av fakturaen")
	}
	if fileHeader.Size > maxInvoiceSize {
		return flashError(c, "/faktura", "Bildet er for stort (maks 10 MB)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return flashError(c, "/faktura", "Kunne ikke lese filen")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return flashError(c, "/faktura", "Kunne ikke lese filen")
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mimeType, err := upload.ValidateInvoiceImage(fileHeader.Filename, head)
	if err != nil {
		return flashError(c, "/faktura", err.Error())
	}

	extraction, raw, err := analyzer.AnalyzeImage(c.Context(), data, mimeType)
	if err != nil {
		log.Printf("invoice analysis failed for %s: %v", fileHeader.Filename, err)
		return flashError(c, "/faktura", "Klarte ikke å lese fakturaen, prøv med et skarpere bilde")
	}

	lineItems, err := json.Marshal(extraction.LineItems)
	if err != nil {
		return flashError(c, "/faktura", "Noe gikk galt, prøv igjen")
	}

	analysis := &models.InvoiceAnalysis{
		FileName:       fileHeader.Filename,
		MimeType:       mimeType,
		RawResponse:    raw,
		LineItems:      lineItems,
		TotalAmount:    extraction.TotalAmount,
		ConsumptionKwh: extraction.ConsumptionKwh,
		EffectivePrice: extraction.EffectivePriceOreKwh(),
	}
	if err := repos.InvoiceAnalysis.Create(analysis); err != nil {
		log.Printf("failed to store invoice analysis: %v", err)
	}

	return render(c, "invoice_result", fiber.Map{
		"Title":          "Fakturasjekk",
		"FileName":       fileHeader.Filename,
		"LineItems":      extraction.LineItems,
		"TotalAmount":    extraction.TotalAmount,
		"ConsumptionKwh": extraction.ConsumptionKwh,
		"EffectivePrice": extraction.EffectivePriceOreKwh(),
	})
}
