package handlers_fiber

import (
	"net/http"

	"github.com/pavankumarofficial1231/College-Connect/internal/api"
	"github.com/pavankumarofficial1231/College-Connect/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetProjects returns the displayed project list. Query params: search (text
// over title/summary), user (active user) and notifications (restrict to
// owned projects with pending requests; composes with search).
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	search := c.Query("search")
	user := c.Query("user")
	notificationsOnly := c.QueryBool("notifications")

	projects, err := h.uc.ListProjects(c.Context(), search, user, notificationsOnly)
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Projects []api.Project `json:"projects"`
	}{Projects: mapper.ToAPIProjectList(projects)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostProjectCreate posts a new project authored by the acting user.
func (h *Handler) PostProjectCreate(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	p, err := h.uc.CreateProject(c.Context(), mapper.FromAPINewProject(body), body.User)
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToAPIProject(*p)})
}
