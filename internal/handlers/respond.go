package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Failure(message))
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

// statusFor maps service errors to HTTP statuses. Unknown errors are logged
// and reported as 500 without details.
func statusFor(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAddictionNotFound),
		errors.Is(err, services.ErrUserAddictionNotFound),
		errors.Is(err, services.ErrReportNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrNotOwner),
		errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrUnknownActor):
		return fail(c, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrAddictionExists),
		errors.Is(err, services.ErrAlreadyLinked):
		return fail(c, fiber.StatusConflict, err.Error())

	case errors.Is(err, services.ErrUsernameCooldown):
		return fail(c, fiber.StatusTooManyRequests, err.Error())

	case errors.Is(err, services.ErrInvalidReactionType),
		errors.Is(err, services.ErrInvalidPostType),
		errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrContentTooLong),
		errors.Is(err, services.ErrUnknownReference),
		errors.Is(err, services.ErrInvalidUsername),
		errors.Is(err, services.ErrInvalidCountry),
		errors.Is(err, services.ErrInvalidAddictionName),
		errors.Is(err, services.ErrInvalidSobrietyStatus),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidIntensity),
		errors.Is(err, services.ErrInvalidMood),
		errors.Is(err, services.ErrInvalidLoggedAt):
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	slog.Error(fallback, "error", err, "request_id", requestID(c), "method", c.Method(), "path", c.Path())
	return fail(c, fiber.StatusInternalServerError, fallback)
}
