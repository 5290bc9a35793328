package models

import (
	"errors"
	"fmt"
)

// Domain specific sentinel errors.
var (
	ErrBadRequest        = errors.New("bad request")
	ErrValidation        = errors.New("validation failed")
	ErrNoStructuredBlock = errors.New("response has no structured place block")
	ErrEmptyQuery        = errors.New("query is empty")
)

// GenericServiceMessage is the only text a user ever sees for upstream failures.
const GenericServiceMessage = "Failed to fetch recommendations. Please try again."

// Kind represents the category of error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindPermission: geolocation denied or unsupported.
	KindPermission
	// KindService: the AI call failed or returned an unusable response.
	KindService
	// KindParse: the structured block was present but undecodable.
	KindParse
	// KindValidation: request input was rejected.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindPermission:
		return "permission"
	case KindService:
		return "service"
	case KindParse:
		return "parse"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a domain error with a typed Kind. Message is safe to show to users;
// Err carries the diagnostic cause.
type Error struct {
	Kind    Kind
	Message string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ServiceError wraps an upstream failure behind the generic message.
func ServiceError(op string, err error) *Error {
	return &Error{Kind: KindService, Message: GenericServiceMessage, Op: op, Err: err}
}

// PermissionError reports a failed geolocation acquisition.
func PermissionError(message string, err error) *Error {
	if message == "" {
		message = "location permission denied"
	}
	return &Error{Kind: KindPermission, Message: message, Err: err}
}

// ParseError reports an undecodable structured block.
func ParseError(err error) *Error {
	return &Error{Kind: KindParse, Message: "structured place block could not be decoded", Err: err}
}

// ValidationError reports rejected request input.
func ValidationError(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: errors.Join(ErrValidation, err)}
}

// KindOf extracts the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the text that may be shown for err.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return GenericServiceMessage
}
