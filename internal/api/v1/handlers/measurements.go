package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/db/models"
	"github.com/healthindex/healthindex/internal/services"
	"github.com/healthindex/healthindex/internal/types"
)

// GetMeasurements handles listing the raw measurements of the latest dataset
func (h *APIHandler) GetMeasurements(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrorResponse{Error: ErrMsgInvalidParams})
	}
	listOpts := getPaginationOptions(page)

	_, measurements, err := h.query.LatestMeasurements(c.Context(), listOpts)
	if err != nil {
		if errors.Is(err, services.ErrNoSnapshot) {
			return c.Status(fiber.StatusNotFound).
				JSON(types.ErrorResponse{Error: ErrMsgNoData})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrorResponse{Error: ErrMsgMeasListFailed, Details: err.Error()})
	}

	return c.JSON(types.ListResponse[models.Measurement]{
		Rows: measurements,
		Pagination: types.PaginationResponse{
			Total:  len(measurements),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	})
}
