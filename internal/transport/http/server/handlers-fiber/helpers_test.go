package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"member-admin/internal/entities"
	"member-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "validation",
			err:    fmt.Errorf("%w: email, password, and calling user ID are required", entities.ErrInvalidArgument),
			status: http.StatusBadRequest,
			msg:    "invalid argument: email, password, and calling user ID are required",
		},
		{name: "unknown target", err: entities.ErrAccountNotFound, status: http.StatusBadRequest, msg: "user not found"},
		{name: "unauthenticated", err: entities.ErrUnauthenticated, status: http.StatusUnauthorized, msg: "unauthenticated"},
		{
			name:   "forbidden",
			err:    fmt.Errorf("%w: calling user does not match session", entities.ErrForbidden),
			status: http.StatusForbidden,
			msg:    forbiddenMessage,
		},
		{
			name:   "downstream",
			err:    fmt.Errorf("%w: %w", entities.ErrDownstream, entities.ErrAccountExists),
			status: http.StatusInternalServerError,
			msg:    "downstream failure: a user with this email address has already been registered",
		},
		{
			name:   "already registered",
			err:    entities.ErrAccountExists,
			status: http.StatusInternalServerError,
			msg:    "a user with this email address has already been registered",
		},
		{name: "unclassified", err: errors.New("boom"), status: http.StatusInternalServerError, msg: "boom"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.msg, body.Error)
		})
	}
}
