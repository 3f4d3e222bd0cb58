package handlers

import (
	"bytes"
	"errors"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/healthindex/healthindex/internal/db"
	"github.com/healthindex/healthindex/internal/services"
	"github.com/healthindex/healthindex/internal/types"
)

// GetIndex handles retrieving the latest computed index, best scoring states
// first.
func (h *APIHandler) GetIndex(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrorResponse{Error: ErrMsgInvalidParams})
	}
	listOpts := getPaginationOptions(page)

	snapshot, scores, err := h.query.LatestScores(c.Context(), listOpts)
	if err != nil {
		if errors.Is(err, services.ErrNoSnapshot) {
			return c.Status(fiber.StatusNotFound).
				JSON(types.ErrorResponse{Error: ErrMsgNoData})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrorResponse{Error: ErrMsgIndexFailed, Details: err.Error()})
	}

	rows := make([]types.IndexEntry, len(scores))
	for i, score := range scores {
		rows[i] = types.IndexEntry{
			State: score.State,
			Score: score.Score,
		}
	}

	return c.JSON(types.IndexResponse{
		SnapshotID: snapshot.ID,
		FetchedAt:  snapshot.FetchedAt.Format(time.RFC3339),
		Rows:       rows,
		Pagination: types.PaginationResponse{
			Total:  len(rows),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	})
}

// GetStateIndex handles retrieving one state's score from the latest dataset
func (h *APIHandler) GetStateIndex(c *fiber.Ctx) error {
	state, err := decodeStateParam(c)
	if err != nil || state == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(types.ErrorResponse{Error: ErrMsgStateRequired})
	}

	score, err := h.query.StateScore(c.Context(), state)
	if err != nil {
		if errors.Is(err, services.ErrNoSnapshot) {
			return c.Status(fiber.StatusNotFound).
				JSON(types.ErrorResponse{Error: ErrMsgNoData})
		}
		if db.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).
				JSON(types.ErrorResponse{Error: ErrMsgStateNotFound})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrorResponse{Error: ErrMsgIndexFailed, Details: err.Error()})
	}

	return c.JSON(score)
}

// ExportIndex handles exporting the latest dataset as CSV
func (h *APIHandler) ExportIndex(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.query.ExportLatest(c.Context(), &buf); err != nil {
		if errors.Is(err, services.ErrNoSnapshot) {
			return c.Status(fiber.StatusNotFound).
				JSON(types.ErrorResponse{Error: ErrMsgNoData})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(types.ErrorResponse{Error: ErrMsgExportFailed, Details: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="index_data.csv"`)
	return c.Send(buf.Bytes())
}

// decodeStateParam extracts the state path parameter, decoding URL escapes
// such as %20 in multi-word state names.
func decodeStateParam(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("state"))
}
