package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/hazzler78/stromsjef-sub000/internal/pkg/cache"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/database"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/env"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/router"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/telegram"
)

func main() {
	app := NewApplication()

	registerTelegramWebhook()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/stromsjef to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:     html.New(basePath+"views", ".html"),
		BodyLimit: 10 << 20, // invoice uploads cap at 10 MiB
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/icons/favicon.ico",
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			"admin": env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}

// registerTelegramWebhook points the bot at our webhook endpoint. Both
// settings are optional so local setups can run without a bot.
func registerTelegramWebhook() {
	token := env.GetEnv("TELEGRAM_BOT_TOKEN", "")
	webhookURL := env.GetEnv("TELEGRAM_WEBHOOK_URL", "")
	if token == "" || webhookURL == "" {
		return
	}

	client := telegram.NewClient(token)
	if err := client.SetWebhook(webhookURL, env.GetEnv("TELEGRAM_WEBHOOK_SECRET", "")); err != nil {
		log.Printf("failed to register telegram webhook: %v", err)
		return
	}
	log.Printf("telegram webhook registered at %s", webhookURL)
}
