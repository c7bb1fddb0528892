package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rafif143/basket/internal/helper"
)

// AuthMiddleware verifies the admin JWT, trying the cookie slot first and
// falling back to the Authorization header.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("admin_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		admin, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("adminID", admin.AdminID)
		ctx.Locals("admin", admin)
		return ctx.Next()
	}
}
