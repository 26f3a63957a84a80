package contact

import (
	"errors"
)

// ErrFieldsRequired is reported when name, email or message is missing.
// The text is shown to visitors as is.
var ErrFieldsRequired = errors.New("All fields are required") //nolint:stylecheck,revive

// Kind enumerates why a submission failed.
type Kind uint8

const (
	// KindValidation means a required field was missing. Nothing was sent.
	KindValidation Kind = iota + 1
	// KindTransport means the message could not be built or the relay rejected it.
	KindTransport
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the failure result of Service.Submit.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements error.
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
