package scheduling

import "fmt"

// Error codes for scheduling rejections. Each rejection names the violated
// invariant so clients can tell "pick another time" from "pick another doctor".
const (
	CodeInvalidInterval  = "INVALID_INTERVAL"
	CodeInvalidDate      = "INVALID_DATE"
	CodeUnknownClinician = "UNKNOWN_CLINICIAN"
	CodeSlotUnavailable  = "SLOT_UNAVAILABLE"
)

// Error is a scheduling validation outcome surfaced directly to the caller.
// None of these represent transient failure; retrying does not help.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidIntervalError(msg string) error {
	return &Error{Code: CodeInvalidInterval, Message: msg}
}

func NewInvalidDateError(msg string) error {
	return &Error{Code: CodeInvalidDate, Message: msg}
}

func NewUnknownClinicianError(msg string) error {
	return &Error{Code: CodeUnknownClinician, Message: msg}
}

func NewSlotUnavailableError(msg string) error {
	return &Error{Code: CodeSlotUnavailable, Message: msg}
}
