package middleware

import (
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/identity"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserRequired rejects callers that did not resolve to a user UUID.
func UserRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := identity.UserID(c); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure("Unauthorized: user identity required"))
		}
		return c.Next()
	}
}

// adminJWT verifies the bearer token and requires a role=admin claim.
func adminJWT(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure("Unauthorized"))
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure("Invalid claims"))
			}
			if role, _ := claims["role"].(string); role != "admin" {
				return c.Status(fiber.StatusForbidden).JSON(dto.Failure("Admin access required"))
			}
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure("Unauthorized: invalid or expired token"))
		},
	})
}
