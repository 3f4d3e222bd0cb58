package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/types"
)

// TriggerRefresh handles an on-demand data refresh. The refresh runs
// synchronously; the upstream fetch is bounded by the client timeout.
func (h *APIHandler) TriggerRefresh(c *fiber.Ctx) error {
	snapshot, err := h.refresh.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).
			JSON(types.ErrorResponse{Error: ErrMsgRefreshFailed, Details: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(snapshot)
}
