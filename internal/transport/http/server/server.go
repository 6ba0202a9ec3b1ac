// Package server assembles the Fiber application of the mutation service.
package server

import (
	"member-admin/config"
	"member-admin/internal/transport/http/middleware"
	"member-admin/internal/transport/http/server/handlers-fiber"
	"member-admin/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// FunctionsPrefix is the route group of the privileged functions.
const FunctionsPrefix = "/functions/v1"

// New builds the HTTP application with middleware and routes registered.
func New(log *zap.SugaredLogger, cfg config.HTTPConfig, uc usecase.InterfaceUsecase) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.RequestTimeout,
		WriteTimeout:          cfg.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	functions := serv.Group(FunctionsPrefix)
	functions.Options("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).Send(nil)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(functions, h)

	return serv
}
