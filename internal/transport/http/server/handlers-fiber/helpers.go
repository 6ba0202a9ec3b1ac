package handlers_fiber

import (
	"errors"
	"net/http"

	"member-admin/internal/entities"
	"member-admin/internal/transport/http/dto"
	"member-admin/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

const forbiddenMessage = "Unauthorized - Admin access required"

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrAccountNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		msg = forbiddenMessage
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: msg}
}

func session(c *fiber.Ctx) entities.Session {
	s, _ := middleware.SessionFrom(c)
	return s
}
