// Package mailertest provides a recording mailer.Sender for tests.
package mailertest

import (
	"context"
	"sync"

	"github.com/portfolio-web/portfolio/internal/mailer"
)

// Recorder records every message it is asked to send.
// When Err is set, Send records the attempt and returns Err.
type Recorder struct {
	mu       sync.Mutex
	Err      error
	messages []mailer.Message
}

// Send implements mailer.Sender.
func (r *Recorder) Send(_ context.Context, m *mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, *m)

	return r.Err
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []mailer.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]mailer.Message, len(r.messages))
	copy(out, r.messages)

	return out
}
