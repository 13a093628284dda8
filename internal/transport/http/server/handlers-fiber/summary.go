package handlers_fiber

import (
	"net/http"

	"github.com/pavankumarofficial1231/College-Connect/internal/api"

	"github.com/gofiber/fiber/v2"
)

// PostSummary drafts a one-sentence summary for a project description. The
// client may re-invoke manually on failure; there is no retry here.
func (h *Handler) PostSummary(c *fiber.Ctx) error {
	var body api.GenerateSummaryRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	text, err := h.uc.GenerateSummary(c.Context(), body.Description)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.GenerateSummaryResponse{Summary: text})
}
