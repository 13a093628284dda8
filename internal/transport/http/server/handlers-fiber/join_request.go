package handlers_fiber

import (
	"net/http"

	"github.com/pavankumarofficial1231/College-Connect/internal/api"
	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
	"github.com/pavankumarofficial1231/College-Connect/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostJoinRequest files a join request on a project.
func (h *Handler) PostJoinRequest(c *fiber.Ctx) error {
	var body api.SubmitJoinRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	p, err := h.uc.SubmitJoinRequest(c.Context(), c.Params("id"), body.User, body.Message)
	if err != nil {
		h.log.Errorw("failed to submit join request", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToAPIProject(*p)})
}

// PostResolveRequest applies an owner decision on a join request. Unknown
// ids are a lenient no-op: the response still carries 200 with
// resolved=false so stale clients do not error out.
func (h *Handler) PostResolveRequest(c *fiber.Ctx) error {
	var body api.ResolveJoinRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	p, resolved, err := h.uc.ResolveJoinRequest(
		c.Context(),
		c.Params("id"),
		c.Params("requestId"),
		body.UserName,
		entities.RequestAction(body.Action),
	)
	if err != nil {
		h.log.Errorw("failed to resolve join request", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Resolved bool         `json:"resolved"`
		Project  *api.Project `json:"project,omitempty"`
	}{Resolved: resolved}
	if p != nil {
		dto := mapper.ToAPIProject(*p)
		resp.Project = &dto
	}
	return c.Status(http.StatusOK).JSON(resp)
}
