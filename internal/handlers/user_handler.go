package handlers

import (
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.userService.CreateUser(c.UserContext(), &req)
	if err != nil {
		return statusFor(c, err, "Failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserResponse{Success: true, User: user})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return statusFor(c, err, "Failed to fetch user")
	}
	return c.JSON(dto.UserResponse{Success: true, User: user})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.UserContext(), actorID, id, &req)
	if err != nil {
		return statusFor(c, err, "Failed to update profile")
	}
	return c.JSON(dto.UserResponse{Success: true, User: user})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	actorID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrUserNotFound.Error())
	}

	if err := h.userService.DeleteUser(c.UserContext(), actorID, id); err != nil {
		return statusFor(c, err, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Account deleted"})
}
