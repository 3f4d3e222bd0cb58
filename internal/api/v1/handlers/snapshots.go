package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/db/models"
	"github.com/healthindex/healthindex/internal/types"
)

// ListSnapshots handles listing the refresh history, newest first
func (h *APIHandler) ListSnapshots(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrorResponse{Error: ErrMsgInvalidParams})
	}
	listOpts := getPaginationOptions(page)

	snapshots, err := h.query.ListSnapshots(c.Context(), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrorResponse{Error: ErrMsgSnapListFailed, Details: err.Error()})
	}

	return c.JSON(types.ListResponse[models.Snapshot]{
		Rows: snapshots,
		Pagination: types.PaginationResponse{
			Total:  len(snapshots),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	})
}
