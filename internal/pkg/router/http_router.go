package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/app/controllers"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/cache"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/middleware"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Wire controllers to the Redis-backed plan store
	controllers.Initialize(planstore.NewRedisStore(cache.GetClient()))
	controllers.InitializeAdminPlanController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Marketing pages
	app.Get("/", controllers.HandleHome)
	app.Get("/avtaler", controllers.HandlePlans)
	app.Get("/om-oss", controllers.HandleAbout)
	app.Get("/personvern", controllers.HandlePrivacy)

	// Outbound affiliate clicks
	app.Get("/go/:id", controllers.HandleGoPlan)

	// Contact + newsletter funnel
	app.Get("/kontakt", controllers.HandleContact)
	app.Post("/kontakt", controllers.HandleContactSubmit)
	app.Post("/nyhetsbrev", controllers.HandleNewsletterSubscribe)

	// Invoice OCR analyzer
	app.Get("/faktura", controllers.HandleInvoiceAnalyzer)
	app.Post("/faktura", controllers.HandleInvoiceAnalyze)

	// Telegram webhook (secret-token verified in the controller)
	app.Post("/webhooks/telegram", controllers.HandleTelegramWebhook)
}

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	app.Get("/admin/login", controllers.HandleAdminLoginForm)
	app.Post("/admin/login", controllers.HandleAdminLogin)
	app.Post("/admin/logout", controllers.HandleAdminLogout)

	admin := app.Group("/admin", middleware.RequireAdmin)
	admin.Get("/", controllers.HandleAdminDashboard)
	admin.Get("/messages", controllers.HandleAdminMessages)
	admin.Post("/messages/:id/handled", controllers.HandleAdminMessageHandled)
	admin.Get("/subscribers", controllers.HandleAdminSubscribers)

	apc := controllers.GetAdminPlanController()
	admin.Get("/plans", apc.HandleAdminPlans)
	admin.Get("/plans/create", apc.HandleAdminPlanCreate)
	admin.Post("/plans/create", apc.HandleAdminPlanStore)
	admin.Get("/plans/:id/edit", apc.HandleAdminPlanEdit)
	admin.Post("/plans/:id/update", apc.HandleAdminPlanUpdate)
	admin.Post("/plans/:id/delete", apc.HandleAdminPlanDelete)
	admin.Post("/plans/:id/feature", apc.HandleAdminPlanFeature)
}
