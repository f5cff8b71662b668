package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/internal/pkg/middleware"
)

// RegisterHandlers wires the v1 routes onto the given router group.
// Catalog reads, newsletter signup and the invoice analyzer are public;
// everything that mutates the catalog sits behind the admin session.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)

	router.Get("/plans", s.GetPlans)
	router.Post("/plans", middleware.RequireAdminAPI, s.PostPlan)
	router.Put("/plans/:id", middleware.RequireAdminAPI, s.PutPlan)
	router.Delete("/plans/:id", middleware.RequireAdminAPI, s.DeletePlan)
	router.Post("/price-update", middleware.RequireAdminAPI, s.PostPriceUpdate)

	router.Post("/invoice/analyze", s.PostInvoiceAnalyze)
	router.Post("/newsletter/subscribe", s.PostNewsletterSubscribe)
}
