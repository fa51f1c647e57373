package domain

import "errors"

// Error kinds. Adapters wrap provider and driver failures in an *Error whose
// Kind is one of these, so callers can branch with errors.Is.
var (
	ErrValidation       = errString("validation error")
	ErrNotFound         = errString("not found")
	ErrInvalidSignature = errString("invalid signature")
	ErrUpstream         = errString("upstream error")
	ErrPersistence      = errString("persistence error")
	ErrConflict         = errString("conflict")
)

type errString string

func (e errString) Error() string { return string(e) }

// Error carries a kind, the failing operation and the underlying cause.
type Error struct {
	Kind error
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return e.Kind == target }

// Message is the caller-safe text of the error, without the wrapped cause.
func (e *Error) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.Error()
}

func Validation(op, msg string) error {
	return &Error{Kind: ErrValidation, Op: op, Msg: msg}
}

func NotFound(op, msg string) error {
	return &Error{Kind: ErrNotFound, Op: op, Msg: msg}
}

func InvalidSignature(op string, err error) error {
	return &Error{Kind: ErrInvalidSignature, Op: op, Msg: "invalid signature", Err: err}
}

func Upstream(op string, err error) error {
	return &Error{Kind: ErrUpstream, Op: op, Err: err}
}

func Persistence(op string, err error) error {
	return &Error{Kind: ErrPersistence, Op: op, Err: err}
}

func Conflict(op string, err error) error {
	return &Error{Kind: ErrConflict, Op: op, Err: err}
}

// KindOf returns the taxonomy kind of err, or nil if it carries none.
func KindOf(err error) error {
	for _, k := range []error{ErrValidation, ErrNotFound, ErrInvalidSignature, ErrUpstream, ErrPersistence, ErrConflict} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
