package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetUsers returns the known-user roster for the active-user selector.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Users []string `json:"users"`
	}{Users: users}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetNotificationCount returns pending join requests across projects owned
// by the user in the `user` query param.
func (h *Handler) GetNotificationCount(c *fiber.Ctx) error {
	user := c.Query("user")

	count, err := h.uc.NotificationCount(c.Context(), user)
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		User  string `json:"user"`
		Count int    `json:"count"`
	}{User: user, Count: count}
	return c.Status(http.StatusOK).JSON(resp)
}
