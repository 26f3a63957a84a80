package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-web/portfolio/internal/web/handler"
	"github.com/portfolio-web/portfolio/internal/web/navigation"
)

// errorHandler renders the 404 and 500 pages. Other client errors are
// answered with their status text. Fault details never reach the client.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	switch {
	case code == fiber.StatusNotFound:
		return renderError(c, code, handler.NotFoundTemplate, "Page Not Found")
	case code < fiber.StatusInternalServerError:
		return c.Status(code).SendString(fiberErr.Message)
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")

	return renderError(c, fiber.StatusInternalServerError, handler.ServerErrorTemplate, "Server Error")
}

// renderError renders an error template and falls back to plain text
// when the template itself can not be rendered.
func renderError(c *fiber.Ctx, code int, template, title string) error {
	c.Status(code)

	err := c.Render(template, fiber.Map{
		"Navigation": navigation.NewContext(title, ""),
	}, handler.BaseLayout)
	if err != nil {
		log.Error().Err(err).Str("template", template).Msg("failed to render error page")

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		return c.SendString(utils.StatusMessage(code))
	}

	return nil
}

// notFound ends the chain for every route nobody handled.
func notFound(_ *fiber.Ctx) error {
	return fiber.ErrNotFound
}
