package domain

import "fmt"

// ErrorKind is the closed set of failure categories the core layers may
// return. The HTTP adapter maps each kind to a status code in one place;
// nothing else inspects error shapes.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInvalidReference
	KindValidationFailed
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInvalidReference:
		return "invalid_reference"
	case KindValidationFailed:
		return "validation_failed"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries an ErrorKind plus a human-readable message. Store and policy
// layers return *Error for every expected failure; anything else that bubbles
// up is treated as KindInternal.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match any *Error of the same kind, so callers can compare
// against the sentinel values below without caring about the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Kind-comparison sentinels for errors.Is.
var (
	ErrUnauthenticated  = &Error{Kind: KindUnauthenticated, Message: "unauthenticated"}
	ErrForbidden        = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInvalidReference = &Error{Kind: KindInvalidReference, Message: "invalid reference"}
	ErrValidationFailed = &Error{Kind: KindValidationFailed, Message: "validation failed"}
	ErrConflict         = &Error{Kind: KindConflict, Message: "conflict"}
)

// KindOf extracts the kind from an error returned by the core layers.
// Unknown errors are internal failures.
func KindOf(err error) ErrorKind {
	var e *Error
	for err != nil {
		if de, ok := err.(*Error); ok {
			e = de
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return KindInternal
	}
	return e.Kind
}
