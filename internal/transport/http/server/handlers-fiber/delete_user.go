package handlers_fiber

import (
	"net/http"

	"member-admin/internal/mapper"
	"member-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostDeleteUser hard-deletes an account.
func (h *Handler) PostDeleteUser(c *fiber.Ctx) error {
	var body dto.DeleteUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}

	if err := h.uc.DeleteAccount(c.UserContext(), session(c), mapper.FromDeleteUserRequest(body)); err != nil {
		h.log.Infow("delete-user failed", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.SuccessResponse{Success: true})
}
