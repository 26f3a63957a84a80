// Package mailer delivers plain text messages through an SMTP relay.
package mailer

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/wneessen/go-mail"

	"github.com/portfolio-web/portfolio/internal/config"
)

var (
	// ErrNoRecipient is returned when a message has no recipient.
	ErrNoRecipient = errors.New("message has no recipient")
	// ErrNilMessage is returned when Send is called without a message.
	ErrNilMessage = errors.New("message is nil")
)

// Message is an outbound plain text mail.
// Address fields are parsed by the mail library, never concatenated into headers.
type Message struct {
	From    string
	ReplyTo string
	To      []string
	Subject string
	Body    string
	Headers map[string]string
}

// Sender delivers a message, blocking until the relay accepts or rejects it.
type Sender interface {
	Send(ctx context.Context, m *Message) error
}

// SMTP sends messages through the configured relay.
type SMTP struct {
	cfg config.Mail
}

// NewSMTP returns a Sender for the given relay settings.
func NewSMTP(cfg *config.Mail) *SMTP {
	return &SMTP{cfg: *cfg}
}

// Send builds m and hands it to the relay. A new connection is used per call.
func (s *SMTP) Send(ctx context.Context, m *Message) error {
	msg, err := build(m)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Server, s.options()...)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create smtp client")
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return pkgerrors.Wrap(err, "failed to send mail")
	}

	return nil
}

func (s *SMTP) options() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.NoTLS),
	}

	if s.cfg.UseTLS {
		opts[1] = mail.WithTLSPolicy(mail.TLSMandatory)
	}

	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	return opts
}

// build converts m into a go-mail message.
func build(m *Message) (*mail.Msg, error) {
	if m == nil {
		return nil, ErrNilMessage
	}

	if len(m.To) == 0 {
		return nil, ErrNoRecipient
	}

	msg := mail.NewMsg()

	if err := msg.From(m.From); err != nil {
		return nil, pkgerrors.Wrap(err, "invalid sender address")
	}

	if err := msg.To(m.To...); err != nil {
		return nil, pkgerrors.Wrap(err, "invalid recipient address")
	}

	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, pkgerrors.Wrap(err, "invalid reply-to address")
		}
	}

	for name, value := range m.Headers {
		msg.SetGenHeader(mail.Header(name), value)
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Body)

	return msg, nil
}
