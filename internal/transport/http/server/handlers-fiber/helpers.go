package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/pavankumarofficial1231/College-Connect/internal/api"
	"github.com/pavankumarofficial1231/College-Connect/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrProjectNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "project not found"
	case errors.Is(err, entities.ErrEmptySummary):
		status = http.StatusBadGateway
		code = api.EMPTYSUMMARY
		msg = "generation returned no usable text"
	case errors.Is(err, entities.ErrSummaryService):
		status = http.StatusBadGateway
		code = api.SUMMARYFAILED
		msg = "summary service unavailable"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}
