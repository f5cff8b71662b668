package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/metrics/counter"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
)

// HandlePlans renders the plan catalog, optionally filtered to one zone.
func HandlePlans(c *fiber.Ctx) error {
	plans, err := planStore.All(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load plans")
	}

	zone := models.PriceZone(c.Query("zone"))
	if zone != "" && !zone.IsMarketZone() {
		return c.Status(fiber.StatusBadRequest).SendString("Unknown price zone")
	}

	shown := planstore.FilterByZone(plans, zone)
	planstore.SortForDisplay(shown)

	title := "Alle strømavtaler"
	if zone != "" {
		title = "Strømavtaler i " + zone.DisplayName()
	}

	return render(c, "plans", fiber.Map{
		"Title":        title,
		"Plans":        shown,
		"Zones":        models.AllPriceZones(),
		"SelectedZone": zone,
	})
}

// HandleGoPlan counts an outbound affiliate click and redirects to the
// supplier's order page.
func HandleGoPlan(c *fiber.Ctx) error {
	id := c.Params("id")

	plans, err := planStore.All(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load plans")
	}
	plan, ok := planstore.FindByID(plans, id)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Plan not found")
	}

	// Click counting must never block the redirect
	if err := counter.AddPlanClick(plan.ID); err != nil {
		log.Printf("failed to count click for plan %s: %v", plan.ID, err)
	}

	return c.Redirect(plan.AffiliateLink, fiber.StatusFound)
}
