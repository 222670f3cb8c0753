package middleware

import (
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDHeader carries the caller id for clients without a bearer token.
const UserIDHeader = "x-user-id"

// Identity resolves the caller for every request:
// 1. A valid bearer token's sub claim (only when JWT_SECRET is set)
// 2. The x-user-id header
// 3. Otherwise the caller stays anonymous
//
// An invalid token never rejects the request; it is ignored. With JWT_SECRET
// set, a header id only attributes reports and never acts as a user.
func Identity(cfg *config.Config) fiber.Handler {
	secret := []byte(cfg.JWTSecret)

	return func(c *fiber.Ctx) error {
		if len(secret) > 0 {
			identity.RequireVerified(c)
			if raw, ok := bearerToken(c); ok {
				sub, role, err := parseClaims(raw, secret)
				if err == nil && sub != "" {
					identity.SetActor(c, sub, role, identity.SourceToken)
					return c.Next()
				}
				slog.Debug("ignoring invalid bearer token", "error", err, "path", c.Path())
			}
		}

		if id := strings.TrimSpace(c.Get(UserIDHeader)); id != "" {
			identity.SetActor(c, id, "", identity.SourceHeader)
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:]), true
	}
	return "", false
}

func parseClaims(raw string, secret []byte) (sub, role string, err error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	sub, _ = claims["sub"].(string)
	role, _ = claims["role"].(string)
	return sub, role, nil
}
