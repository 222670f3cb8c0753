package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store       storage.Store
	storageKind string
}

func NewHealthHandler(store storage.Store, storageKind string) *HealthHandler {
	return &HealthHandler{store: store, storageKind: storageKind}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.store.Ping(c.UserContext()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   h.storageKind,
		DB:        dbStatus,
	})
}
