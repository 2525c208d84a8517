package appointment

import "fmt"

// Error codes for appointment lifecycle rejections.
const (
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeNotAuthorized     = "NOT_AUTHORIZED"
	CodeNotFound          = "NOT_FOUND"
)

// Error is a lifecycle validation outcome surfaced directly to the caller.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidTransitionError(msg string) error {
	return &Error{Code: CodeInvalidTransition, Message: msg}
}

func NewNotAuthorizedError(msg string) error {
	return &Error{Code: CodeNotAuthorized, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}
