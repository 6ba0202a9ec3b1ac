package handlers_fiber

import (
	"net/http"

	"member-admin/internal/mapper"
	"member-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostCreateUser provisions an account with its role and profile fields.
func (h *Handler) PostCreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}

	userID, err := h.uc.CreateAccount(c.UserContext(), session(c), mapper.FromCreateUserRequest(body))
	if err != nil {
		h.log.Infow("create-user failed", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.CreateUserResponse{Success: true, UserID: userID})
}
