// Package about renders the static about page.
package about

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portfolio-web/portfolio/internal/web/handler"
	"github.com/portfolio-web/portfolio/internal/web/navigation"
)

const (
	// Path is the path to the about page.
	Path = handler.RootPath + "about"

	// TemplateName is the name of the about template.
	TemplateName = "about"
)

// Service is the about handler service.
type Service struct{}

var _ handler.Service = (*Service)(nil)

// New creates the about handler.
func New() *Service {
	return &Service{}
}

// Init registers the about route.
func (s *Service) Init(app *fiber.App) error {
	if app == nil {
		return handler.ErrNilApp
	}

	app.Get(Path, s.Get)

	return nil
}

// Get renders the about page.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Navigation": navigation.NewContext("About", navigation.PageAbout),
	}, handler.BaseLayout)
}
