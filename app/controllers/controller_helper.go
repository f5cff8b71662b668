package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/hazzler78/stromsjef-sub000/app/repository"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/database"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/env"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/ocr"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/planstore"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/telegram"
)

// Shared controller state, set up once by the router.
var (
	planStore  planstore.Store
	repos      *repository.Repositories
	validate   = validator.New()
	dispatcher *telegram.Dispatcher
	botClient  *telegram.Client
	analyzer   *ocr.Analyzer
)

// Initialize wires the controllers to the plan store, the repositories and
// the external service clients.
func Initialize(store planstore.Store) {
	planStore = store
	repository.InitializeFactory(database.GetDB())
	repos = repository.GetGlobalFactory().GetRepositories()
	dispatcher = telegram.NewDispatcher(store)
	botClient = telegram.NewClient(env.GetEnv("TELEGRAM_BOT_TOKEN", ""))
	analyzer = ocr.NewAnalyzer()
}

// render wraps c.Render with the shared layout and flash data.
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flash"] = flash.Get(c)
	return c.Render(view, data, "layouts/main")
}

// flashError redirects with an error flash message.
func flashError(c *fiber.Ctx, target, message string) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect(target)
}

// flashSuccess redirects with a success flash message.
func flashSuccess(c *fiber.Ctx, target, message string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(target)
}
