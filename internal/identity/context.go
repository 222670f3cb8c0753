package identity

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localActor    = "actor_id"
	localRole     = "role"
	localSource   = "actor_source"
	localVerified = "verified_only"
)

// Source records how the caller id was obtained.
type Source string

const (
	SourceToken  Source = "token"
	SourceHeader Source = "header"
)

var ErrNoUser = errors.New("request has no user identity")

// SetActor stores the resolved caller in Fiber context locals.
func SetActor(c *fiber.Ctx, actorID, role string, source Source) {
	c.Locals(localActor, actorID)
	c.Locals(localSource, source)
	if role != "" {
		c.Locals(localRole, role)
	}
}

// RequireVerified marks the request so that only token identities count as
// users. Header ids are still used for attribution through ActorID.
func RequireVerified(c *fiber.Ctx) {
	c.Locals(localVerified, true)
}

// ActorID returns the caller id, or "anonymous" when none was resolved.
func ActorID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localActor).(string); ok && id != "" {
		return id
	}
	return models.AnonymousReporter
}

// UserID returns the caller as a user UUID. Anonymous callers, ids that are
// not UUIDs and unverified header ids on token-enforcing servers yield
// ErrNoUser.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	if verifiedOnly, _ := c.Locals(localVerified).(bool); verifiedOnly {
		if src, _ := c.Locals(localSource).(Source); src != SourceToken {
			return uuid.Nil, ErrNoUser
		}
	}
	id, err := uuid.Parse(ActorID(c))
	if err != nil {
		return uuid.Nil, ErrNoUser
	}
	return id, nil
}

// Viewer is UserID for read paths where anonymity is allowed.
func Viewer(c *fiber.Ctx) *uuid.UUID {
	id, err := UserID(c)
	if err != nil {
		return nil
	}
	return &id
}

func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}
