package apiv1

import (
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/app/repository"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/mail"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/ocr"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/priceupdate"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/upload"
)

// Invoice photos above this size are rejected before OCR.
const maxInvoiceSize = 10 << 20 // 10 MiB

// APIServer exposes the JSON API over the same plan store and
// repositories the web controllers use.
type APIServer struct {
	store    planstore.Store
	applier  *priceupdate.Applier
	analyzer *ocr.Analyzer
	validate *validator.Validate
}

// NewAPIServer creates a new API server instance
func NewAPIServer(store planstore.Store) *APIServer {
	return &APIServer{
		store:    store,
		applier:  priceupdate.NewApplier(store),
		analyzer: ocr.NewAnalyzer(),
		validate: validator.New(),
	}
}

// Pong is the ping response body
type Pong struct {
	Ping string `json:"ping"`
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetPlans returns the catalog, optionally filtered by zone.
func (s *APIServer) GetPlans(c *fiber.Ctx) error {
	plans, err := s.store.All(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plans")
	}

	zone := models.PriceZone(c.Query("zone"))
	if zone != "" && !zone.IsMarketZone() {
		return apiError(c, fiber.StatusBadRequest, "unknown price zone")
	}

	shown := planstore.FilterByZone(plans, zone)
	planstore.SortForDisplay(shown)
	return c.JSON(fiber.Map{"success": true, "plans": shown})
}

// planPayload is the explicit request schema for plan writes. The payload
// is validated before it touches the store.
type planPayload struct {
	SupplierName        string   `json:"supplierName" validate:"required,min=2,max=100"`
	PlanName            string   `json:"planName" validate:"required,min=2,max=150"`
	PricePerKwh         float64  `json:"pricePerKwh"`
	MonthlyFee          float64  `json:"monthlyFee" validate:"gte=0"`
	BindingTime         int      `json:"bindingTime" validate:"gte=0"`
	BindingTimeText     string   `json:"bindingTimeText"`
	TerminationFee      *float64 `json:"terminationFee"`
	TermsGuarantee      string   `json:"termsGuarantee"`
	GuaranteeDisclaimer string   `json:"guaranteeDisclaimer"`
	PriceZone           string   `json:"priceZone" validate:"required"`
	LogoURL             string   `json:"logoUrl"`
	AffiliateLink       string   `json:"affiliateLink" validate:"required,url"`
	Featured            bool     `json:"featured"`
	SortOrder           *int     `json:"sortOrder"`
}

func (p *planPayload) toPlan() (models.Plan, error) {
	zone := models.PriceZone(p.PriceZone)
	if zone != models.ZoneAll && !zone.IsMarketZone() {
		return models.Plan{}, errors.New("priceZone must be NO1..NO5 or ALLE")
	}
	return models.Plan{
		SupplierName:        p.SupplierName,
		PlanName:            p.PlanName,
		PricePerKwh:         p.PricePerKwh,
		MonthlyFee:          p.MonthlyFee,
		BindingTime:         p.BindingTime,
		BindingTimeText:     p.BindingTimeText,
		TerminationFee:      p.TerminationFee,
		TermsGuarantee:      p.TermsGuarantee,
		GuaranteeDisclaimer: p.GuaranteeDisclaimer,
		PriceZone:           zone,
		LogoURL:             p.LogoURL,
		AffiliateLink:       p.AffiliateLink,
		Featured:            p.Featured,
		SortOrder:           p.SortOrder,
	}, nil
}

// PostPlan creates a plan.
func (s *APIServer) PostPlan(c *fiber.Ctx) error {
	var payload planPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := s.validate.Struct(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	plan, err := payload.toPlan()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	plan.ID = uuid.NewString()

	plans, err := s.store.All(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plans")
	}
	plans = append(plans, plan)
	if err := s.store.ReplaceAll(c.Context(), plans); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save plans")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "plan": plan})
}

// PutPlan replaces a plan's fields by ID.
func (s *APIServer) PutPlan(c *fiber.Ctx) error {
	var payload planPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := s.validate.Struct(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	updated, err := payload.toPlan()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	plans, err := s.store.All(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plans")
	}
	plan, ok := planstore.FindByID(plans, c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "plan not found")
	}
	updated.ID = plan.ID
	*plan = updated

	if err := s.store.ReplaceAll(c.Context(), plans); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save plans")
	}
	return c.JSON(fiber.Map{"success": true, "plan": updated})
}

// DeletePlan removes a plan by ID.
func (s *APIServer) DeletePlan(c *fiber.Ctx) error {
	id := c.Params("id")

	plans, err := s.store.All(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plans")
	}

	kept := plans[:0]
	found := false
	for _, p := range plans {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "plan not found")
	}
	if err := s.store.ReplaceAll(c.Context(), kept); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save plans")
	}
	return c.JSON(fiber.Map{"success": true})
}

// priceUpdateRequest is the request body for the free-text update endpoint.
type priceUpdateRequest struct {
	Text string `json:"text" validate:"required"`
}

// PostPriceUpdate runs the chat pipeline over a JSON request: parse,
// validate as one batch, apply.
func (s *APIServer) PostPriceUpdate(c *fiber.Ctx) error {
	var req priceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := s.validate.Struct(req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "text is required")
	}

	cmds := priceupdate.Parse(req.Text)
	if len(cmds) == 0 {
		return apiError(c, fiber.StatusBadRequest, "no price update commands recognized")
	}
	if err := priceupdate.ValidateAll(cmds); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := s.applier.Apply(c.Context(), cmds)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to apply price updates")
	}
	return c.JSON(res)
}

// PostInvoiceAnalyze runs an uploaded invoice image through the vision
// model and returns the extracted cost lines as JSON.
func (s *APIServer) PostInvoiceAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("invoice")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invoice image is required")
	}
	if fileHeader.Size > maxInvoiceSize {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "image exceeds 10 MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "could not read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "could not read upload")
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mimeType, err := upload.ValidateInvoiceImage(fileHeader.Filename, head)
	if err != nil {
		return apiError(c, fiber.StatusUnsupportedMediaType, err.Error())
	}

	extraction, raw, err := s.analyzer.AnalyzeImage(c.Context(), data, mimeType)
	if err != nil {
		log.Printf("invoice analysis failed for %s: %v", fileHeader.Filename, err)
		return apiError(c, fiber.StatusBadGateway, "invoice analysis failed")
	}

	lineItems, err := json.Marshal(extraction.LineItems)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "invoice analysis failed")
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
	repos := repository.GetGlobalFactory().GetRepositories()
	if err := repos.InvoiceAnalysis.Create(analysis); err != nil {
		log.Printf("failed to store invoice analysis: %v", err)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"lineItems":      extraction.LineItems,
		"totalAmount":    extraction.TotalAmount,
		"consumptionKwh": extraction.ConsumptionKwh,
		"effectivePrice": extraction.EffectivePriceOreKwh(),
	})
}

// subscribeRequest is the JSON variant of the newsletter signup.
type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PostNewsletterSubscribe adds a subscriber through the JSON API.
func (s *APIServer) PostNewsletterSubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := s.validate.Struct(req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "a valid email is required")
	}

	repos := repository.GetGlobalFactory().GetRepositories()
	if _, err := repos.NewsletterSubscriber.GetByEmail(req.Email); err == nil {
		return c.JSON(fiber.Map{"success": true, "message": "already subscribed"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusInternalServerError, "subscription failed")
	}

	if err := repos.NewsletterSubscriber.Create(&models.NewsletterSubscriber{Email: req.Email}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "subscription failed")
	}
	if err := mail.SendNewsletterConfirmation(req.Email); err != nil {
		log.Printf("failed to send newsletter confirmation to %s: %v", req.Email, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
