package selection

import (
	"errors"
	"fmt"
)

// Code classifies a selection-retrieval failure. Codes are terminal,
// descriptive outcomes; none of them implies a retry. Fallback between
// methods is an orchestration decision, not an error property.
type Code int

const (
	CodeOther Code = iota
	CodeNoFocusedElement
	CodeNoSelectedContent
	CodeUnsupportedPlatform
	CodeInvalidContentType
	CodeScript
	CodeAccessibility
	CodeClipboard
	CodeIO
	CodeEncoding
)

func (c Code) String() string {
	switch c {
	case CodeNoFocusedElement:
		return "no-focused-element"
	case CodeNoSelectedContent:
		return "no-selected-content"
	case CodeUnsupportedPlatform:
		return "unsupported-platform"
	case CodeInvalidContentType:
		return "invalid-content-type"
	case CodeScript:
		return "script"
	case CodeAccessibility:
		return "accessibility"
	case CodeClipboard:
		return "clipboard"
	case CodeIO:
		return "io"
	case CodeEncoding:
		return "encoding"
	default:
		return "other"
	}
}

// Error is the shared error taxonomy. errors.Is matches two *Error values by
// Code, so the exported sentinels below can be used as match targets for any
// error produced by this module.
type Error struct {
	Code Code

	// Expected and Received are set for CodeInvalidContentType only.
	Expected string
	Received string

	msg string
	err error
}

// Sentinels for errors.Is matching. They are also valid return values for the
// conditions they describe.
var (
	ErrNoFocusedElement    = NewError(CodeNoFocusedElement, "no focused UI element")
	ErrNoSelectedContent   = NewError(CodeNoSelectedContent, "no selected content in focused element")
	ErrUnsupportedPlatform = NewError(CodeUnsupportedPlatform, "unsupported platform")
)

// NewError returns a taxonomy error with a fixed message.
func NewError(code Code, msg string) *Error {
	return &Error{Code: code, msg: msg}
}

// Errorf formats a taxonomy error.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...)}
}

// WrapError attaches a cause, reachable via errors.Unwrap.
func WrapError(code Code, msg string, err error) *Error {
	return &Error{Code: code, msg: msg, err: err}
}

// ContentTypeError reports a resolved selection whose kind does not match what
// the caller asked for.
func ContentTypeError(expected, received string) *Error {
	return &Error{
		Code:     CodeInvalidContentType,
		Expected: expected,
		Received: received,
		msg:      fmt.Sprintf("invalid content type: expected %s, received %s", expected, received),
	}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Is matches by Code so sentinels compare against wrapped instances.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf extracts the taxonomy code from err, or CodeOther when err carries
// none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeOther
}
