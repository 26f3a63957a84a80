// Package contact turns contact form submissions into mails to the site owner.
package contact

import (
	"bytes"
	"context"
	"errors"
	"text/template"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-web/portfolio/internal/mailer"
	"github.com/portfolio-web/portfolio/internal/metrics"
)

const (
	// Subject of every contact mail.
	Subject = "New Contact Form Submission"

	// SubmissionHeader carries the submission id in the outbound mail.
	SubmissionHeader = "X-Submission-ID"
)

var bodyTemplate = template.Must(template.New("body").Parse( //nolint:gochecknoglobals
	`Name: {{.Name}}
Email: {{.Email}}

Message:
{{.Message}}
`))

// Submission is one contact form post. It is never stored.
type Submission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

// Receipt identifies an accepted submission.
type Receipt struct {
	ID string
}

// Service validates submissions and sends them to the configured mailbox.
type Service struct {
	sender   mailer.Sender
	mailbox  string
	validate *validator.Validate
}

// NewService returns a Service delivering through sender to mailbox.
func NewService(sender mailer.Sender, mailbox string) *Service {
	return &Service{
		sender:   sender,
		mailbox:  mailbox,
		validate: validator.New(),
	}
}

// Submit validates sub and sends it synchronously.
// Failures are returned as *Error; there is no retry.
func (s *Service) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	if err := s.validate.Struct(sub); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return Receipt{}, err //nolint:wrapcheck
		}

		metrics.ContactSubmissions.WithLabelValues(metrics.ResultInvalid).Inc()
		log.Debug().Int("missing", len(validationErrors)).Msg("contact submission incomplete")

		return Receipt{}, &Error{Kind: KindValidation, Err: ErrFieldsRequired}
	}

	id := uuid.NewString()

	msg, err := s.compose(id, &sub)
	if err == nil {
		err = s.sender.Send(ctx, msg)
	}

	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.ResultFailed).Inc()
		log.Error().Err(err).Str("submission", id).Msg("failed to deliver contact submission")

		return Receipt{}, &Error{Kind: KindTransport, Err: err}
	}

	metrics.ContactSubmissions.WithLabelValues(metrics.ResultSent).Inc()
	log.Info().Str("submission", id).Msg("contact submission delivered")

	return Receipt{ID: id}, nil
}

// compose builds the outbound message. The submitter is the sender and reply address.
func (s *Service) compose(id string, sub *Submission) (*mailer.Message, error) {
	var body bytes.Buffer

	if err := bodyTemplate.Execute(&body, sub); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &mailer.Message{
		From:    sub.Email,
		ReplyTo: sub.Email,
		To:      []string{s.mailbox},
		Subject: Subject,
		Body:    body.String(),
		Headers: map[string]string{SubmissionHeader: id},
	}, nil
}
