// Package home renders the project list.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-web/portfolio/internal/db/controller/project"
	"github.com/portfolio-web/portfolio/internal/web/handler"
	"github.com/portfolio-web/portfolio/internal/web/navigation"
)

const (
	// Path is the path to the home page.
	Path = handler.RootPath

	// TemplateName is the name of the home template.
	TemplateName = "home"
)

// Service is the home handler service.
type Service struct {
	db *gorm.DB
}

var _ handler.Service = (*Service)(nil)

// New creates the home handler.
func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Init registers the home route.
func (s *Service) Init(app *fiber.App) error {
	if app == nil {
		return handler.ErrNilApp
	}

	app.Get(Path, s.Get)

	return nil
}

// Get renders every stored project in insertion order.
// Store errors are left to the app error handler.
func (s *Service) Get(c *fiber.Ctx) error {
	projects, err := project.GetAll(s.db)
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Debug().Int("projects", len(projects)).Msg("home page projects loaded")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": navigation.NewContext("Home", navigation.PageHome),
		"Projects":   projects,
	}, handler.BaseLayout)
}
