package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/issue-dashboard/internal/api/dto"
	"github.com/spec-kit/issue-dashboard/internal/service"
)

// RefreshHandler exposes the manual refresh trigger.
type RefreshHandler struct {
	service *service.RefreshService
}

// NewRefreshHandler constructs handler.
func NewRefreshHandler(refreshService *service.RefreshService) *RefreshHandler {
	return &RefreshHandler{service: refreshService}
}

// Trigger POST /api/refresh.
func (h *RefreshHandler) Trigger(c *fiber.Ctx) error {
	dataset, err := h.service.TriggerManual(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RefreshResponse{
		Source:      string(dataset.Source),
		Records:     len(dataset.Issues),
		LastUpdated: dataset.FetchedAt.Format(time.RFC3339),
	}})
}
