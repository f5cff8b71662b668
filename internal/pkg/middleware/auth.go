package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/internal/pkg/session"
)

// SessionKeyAdmin marks an authenticated admin session.
const SessionKeyAdmin = "admin_logged_in"

func isAdminSession(c *fiber.Ctx) bool {
	return session.GetSessionValue(c, SessionKeyAdmin) == "1"
}

// RequireAdmin ensures an authenticated admin session; redirects to the
// login form otherwise.
func RequireAdmin(c *fiber.Ctx) error {
	if !isAdminSession(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAdminAPI is the JSON variant for API routes: 401 instead of a
// redirect.
func RequireAdminAPI(c *fiber.Ctx) error {
	if !isAdminSession(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "admin login required",
		})
	}
	return c.Next()
}
