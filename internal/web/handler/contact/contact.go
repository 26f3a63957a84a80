// Package contact serves the contact form and accepts its submissions.
package contact

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portfolio-web/portfolio/internal/contact"
	"github.com/portfolio-web/portfolio/internal/web/handler"
	"github.com/portfolio-web/portfolio/internal/web/navigation"
)

const (
	// Path is the path to the contact page.
	Path = handler.RootPath + "contact"

	// TemplateName is the name of the contact template.
	TemplateName = "contact"
)

// Response is the JSON acknowledgment of a submission.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Submitter processes one submission.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) (contact.Receipt, error)
}

// Service is the contact handler service.
type Service struct {
	submitter Submitter
}

var _ handler.Service = (*Service)(nil)

// New creates the contact handler.
func New(submitter Submitter) *Service {
	return &Service{submitter: submitter}
}

// Init registers the contact routes.
func (s *Service) Init(app *fiber.App) error {
	if app == nil {
		return handler.ErrNilApp
	}

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get renders the empty contact form.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Navigation": navigation.NewContext("Contact", navigation.PageContact),
	}, handler.BaseLayout)
}

// Post submits the form fields. Absent fields count as empty.
// Validation and delivery failures are acknowledged as JSON, anything
// else goes to the app error handler.
func (s *Service) Post(c *fiber.Ctx) error {
	sub := contact.Submission{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	}

	if _, err := s.submitter.Submit(c.UserContext(), sub); err != nil {
		var submitErr *contact.Error
		if !errors.As(err, &submitErr) {
			return err //nolint:wrapcheck
		}

		return c.JSON(Response{Success: false, Error: submitErr.Error()})
	}

	return c.JSON(Response{Success: true})
}
