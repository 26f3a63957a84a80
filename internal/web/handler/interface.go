package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Service is the interface for a web handler service.
// Dependencies are passed to the handler constructor, Init only registers routes.
type Service interface {
	Init(app *fiber.App) error
}
