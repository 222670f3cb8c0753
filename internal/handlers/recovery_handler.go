package handlers

import (
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RecoveryHandler struct {
	recoveryService *services.RecoveryService
}

func NewRecoveryHandler(recoveryService *services.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{recoveryService: recoveryService}
}

func (h *RecoveryHandler) ListAddictions(c *fiber.Ctx) error {
	addictions, err := h.recoveryService.ListAddictions(c.UserContext())
	if err != nil {
		return statusFor(c, err, "Failed to fetch addictions")
	}
	return c.JSON(dto.AddictionsResponse{Success: true, Addictions: addictions})
}

func (h *RecoveryHandler) CreateAddiction(c *fiber.Ctx) error {
	var req dto.CreateAddictionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	addiction, err := h.recoveryService.CreateCustomAddiction(c.UserContext(), &req)
	if err != nil {
		return statusFor(c, err, "Failed to create addiction")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "addiction": addiction})
}

func (h *RecoveryHandler) LinkAddiction(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	var req dto.LinkAddictionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ua, err := h.recoveryService.LinkAddiction(c.UserContext(), actorID, userID, &req)
	if err != nil {
		return statusFor(c, err, "Failed to link addiction")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "user_addiction": ua})
}

func (h *RecoveryHandler) ListUserAddictions(c *fiber.Ctx) error {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	links, err := h.recoveryService.ListUserAddictions(c.UserContext(), userID)
	if err != nil {
		return statusFor(c, err, "Failed to fetch user addictions")
	}
	return c.JSON(dto.UserAddictionsResponse{Success: true, UserAddictions: links})
}

func (h *RecoveryHandler) LogSobriety(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserAddictionNotFound.Error())
	}

	var req dto.SobrietyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	log, err := h.recoveryService.LogSobriety(c.UserContext(), actorID, id, &req)
	if err != nil {
		return statusFor(c, err, "Failed to log sobriety")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "log": log})
}

func (h *RecoveryHandler) ListSobrietyLogs(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserAddictionNotFound.Error())
	}

	logs, err := h.recoveryService.ListSobrietyLogs(c.UserContext(), actorID, id)
	if err != nil {
		return statusFor(c, err, "Failed to fetch sobriety logs")
	}
	return c.JSON(dto.SobrietyLogsResponse{Success: true, Logs: logs})
}

func (h *RecoveryHandler) LogCraving(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	var req dto.CravingLogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	log, err := h.recoveryService.LogCraving(c.UserContext(), actorID, userID, &req)
	if err != nil {
		return statusFor(c, err, "Failed to log craving")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "log": log})
}

func (h *RecoveryHandler) ListCravingLogs(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	logs, err := h.recoveryService.ListCravingLogs(c.UserContext(), actorID, userID)
	if err != nil {
		return statusFor(c, err, "Failed to fetch craving logs")
	}
	return c.JSON(dto.CravingLogsResponse{Success: true, Logs: logs})
}

func (h *RecoveryHandler) LogMood(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	var req dto.MoodLogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	log, err := h.recoveryService.LogMood(c.UserContext(), actorID, userID, &req)
	if err != nil {
		return statusFor(c, err, "Failed to log mood")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "log": log})
}

func (h *RecoveryHandler) ListMoodLogs(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	logs, err := h.recoveryService.ListMoodLogs(c.UserContext(), actorID, userID)
	if err != nil {
		return statusFor(c, err, "Failed to fetch mood logs")
	}
	return c.JSON(dto.MoodLogsResponse{Success: true, Logs: logs})
}
