// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/pavankumarofficial1231/College-Connect/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the board API using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// RegisterRoutes mounts the board API on the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	g := app.Group("/api")

	g.Get("/projects", h.GetProjects)
	g.Post("/projects", h.PostProjectCreate)
	g.Post("/projects/:id/requests", h.PostJoinRequest)
	g.Post("/projects/:id/requests/:requestId/resolve", h.PostResolveRequest)

	g.Get("/users", h.GetUsers)
	g.Get("/notifications/count", h.GetNotificationCount)

	g.Post("/summary", h.PostSummary)
}
