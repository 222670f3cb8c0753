package middleware

import (
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

const AdminTokenHeader = "X-Admin-Token"

// ModeratorRequired guards the moderation routes. It accepts:
// 1. The X-Admin-Token header matching ADMIN_TOKEN
// 2. A bearer token signed with JWT_SECRET carrying role=admin
//
// When neither secret is configured the routes stay open.
func ModeratorRequired(cfg *config.Config) fiber.Handler {
	if cfg.ModerationOpen() {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	var bearer fiber.Handler
	if cfg.JWTSecret != "" {
		bearer = adminJWT(cfg)
	}

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			given := c.Get(AdminTokenHeader)
			if given != "" && subtle.ConstantTimeCompare([]byte(given), []byte(cfg.AdminToken)) == 1 {
				return c.Next()
			}
		}
		if bearer != nil {
			return bearer(c)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure("Unauthorized"))
	}
}
