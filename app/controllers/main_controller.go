package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/env"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
)

// HandleHome renders the front page: featured plans banner plus the zone
// picker.
func HandleHome(c *fiber.Ctx) error {
	plans, err := planStore.All(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load plans")
	}

	featured := planstore.Featured(plans)
	planstore.SortForDisplay(featured)

	return render(c, "home", fiber.Map{
		"Title":    "Strømsjef – finn riktig strømavtale",
		"Featured": featured,
		"Zones":    models.AllPriceZones(),
	})
}

// HandleAbout renders the static about page.
func HandleAbout(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{
		"Title": "Om Strømsjef",
	})
}

// HandlePrivacy renders the privacy policy page.
func HandlePrivacy(c *fiber.Ctx) error {
	return render(c, "privacy", fiber.Map{
		"Title": "Personvern",
	})
}

// HandleContact renders the contact form.
func HandleContact(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{
		"Title":           "Kontakt oss",
		"HCaptchaSiteKey": env.GetEnv("HCAPTCHA_SITE_KEY", ""),
	})
}
