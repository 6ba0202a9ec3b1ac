// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"member-admin/internal/transport/http/middleware"
	"member-admin/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the privileged member functions.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("functions"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts the function routes behind bearer authentication.
func RegisterHandlers(router fiber.Router, h *Handler) {
	auth := middleware.BearerAuth(h.log, h.uc)
	router.Post("/create-user", auth, h.PostCreateUser)
	router.Post("/delete-user", auth, h.PostDeleteUser)
}
