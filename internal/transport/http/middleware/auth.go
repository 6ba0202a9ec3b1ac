package middleware

import (
	"context"
	"errors"
	"strings"

	"member-admin/internal/entities"
	"member-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionResolver re-validates a bearer token against the store.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*entities.Session, error)
}

// BearerAuth rejects requests without a valid "Bearer <token>" header and
// stores the resolved session for the handlers.
func BearerAuth(log *zap.SugaredLogger, resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "No authorization header")
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "Invalid authorization header format")
		}
		token := parts[1]

		session, err := resolver.ResolveSession(c.UserContext(), token)
		if errors.Is(err, entities.ErrUnauthenticated) {
			log.Infow("bearer token rejected", "error", err, "path", c.Path())
			return unauthorized(c, "Invalid or expired session")
		}
		if err != nil {
			log.Errorw("session lookup failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}

		c.Locals(sessionKey, *session)
		return c.Next()
	}
}

// SessionFrom returns the session stored by BearerAuth.
func SessionFrom(c *fiber.Ctx) (entities.Session, bool) {
	s, ok := c.Locals(sessionKey).(entities.Session)
	return s, ok
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg})
}
