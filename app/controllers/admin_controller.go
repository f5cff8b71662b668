package controllers

import (
	"crypto/subtle"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/internal/pkg/env"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/metrics/counter"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/middleware"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/session"
)

// HandleAdminLoginForm renders the admin login page.
func HandleAdminLoginForm(c *fiber.Ctx) error {
	return render(c, "admin/login", fiber.Map{
		"Title": "Admin-innlogging",
	})
}

// HandleAdminLogin checks the shared admin password and opens a session.
// The panel uses a single shared password from the environment; there are
// no per-user accounts.
func HandleAdminLogin(c *fiber.Ctx) error {
	expected := env.GetEnv("ADMIN_PASSWORD", "")
	if expected == "" {
		return flashError(c, "/admin/login", "ADMIN_PASSWORD er ikke konfigurert")
	}

	given := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(given), []byte(expected)) != 1 {
		return flashError(c, "/admin/login", "Feil passord")
	}

	if err := session.SetSessionValue(c, middleware.SessionKeyAdmin, "1"); err != nil {
		return flashError(c, "/admin/login", "Kunne ikke opprette sesjon")
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// HandleAdminLogout destroys the admin session.
func HandleAdminLogout(c *fiber.Ctx) error {
	_ = session.DestroySession(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleAdminDashboard renders counts across the panel's data sets.
func HandleAdminDashboard(c *fiber.Ctx) error {
	plans, err := planStore.All(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load plans")
	}

	// move pending click deltas from Redis into MySQL before counting
	if err := counter.FlushAll(); err != nil {
		log.Printf("failed to flush click counters: %v", err)
	}

	messageCount, _ := repos.ContactMessage.Count()
	subscriberCount, _ := repos.NewsletterSubscriber.Count()
	analysisCount, _ := repos.InvoiceAnalysis.Count()
	totalClicks, _ := repos.ClickStat.TotalClicks()

	return render(c, "admin/dashboard", fiber.Map{
		"Title":           "Admin",
		"PlanCount":       len(plans),
		"MessageCount":    messageCount,
		"SubscriberCount": subscriberCount,
		"AnalysisCount":   analysisCount,
		"TotalClicks":     totalClicks,
	})
}

// HandleAdminMessages lists contact form submissions.
func HandleAdminMessages(c *fiber.Ctx) error {
	msgs, err := repos.ContactMessage.List(0, 200)
	if err != nil {
		return flashError(c, "/admin", "Kunne ikke hente meldinger")
	}
	return render(c, "admin/messages", fiber.Map{
		"Title":    "Henvendelser",
		"Messages": msgs,
	})
}

// HandleAdminMessageHandled marks one contact message as handled.
func HandleAdminMessageHandled(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return flashError(c, "/admin/messages", "Ugyldig id")
	}
	if err := repos.ContactMessage.MarkHandled(id); err != nil {
		return flashError(c, "/admin/messages", "Kunne ikke oppdatere meldingen")
	}
	return flashSuccess(c, "/admin/messages", "Melding markert som håndtert")
}

// HandleAdminSubscribers lists newsletter subscribers.
func HandleAdminSubscribers(c *fiber.Ctx) error {
	subs, err := repos.NewsletterSubscriber.List(0, 500)
	if err != nil {
		return flashError(c, "/admin", "Kunne ikke hente abonnenter")
	}
	return render(c, "admin/subscribers", fiber.Map{
		"Title":       "Nyhetsbrev",
		"Subscribers": subs,
	})
}
