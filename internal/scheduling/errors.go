package scheduling

import "fmt"

// Code is the machine-readable error taxonomy from the spec's error
// handling design. Only validation failures and the two "can't schedule
// anything at all" conditions (NoAvailability, SevereShortage) surface as
// errors; everything else is a Warning/SpecialHandling on a successful
// result.
type Code string

const (
	CodeNoAvailability   Code = "NO_AVAILABILITY"
	CodeSevereShortage   Code = "SEVERE_SHORTAGE"
	CodeInvalidTimezone  Code = "INVALID_TIMEZONE"
	CodeInvalidDateRange Code = "INVALID_DATE_RANGE"
	CodePastDateRange    Code = "PAST_DATE_RANGE"
	CodeTooManyContacts  Code = "TOO_MANY_CONTACTS"
)

// Error is the engine's error type: every error carries a machine-readable
// Code, a human Message, and an optional Suggestion.
type Error struct {
	Code       Code
	Message    string
	Suggestion string
}

func (e *Error) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code Code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

func errNoAvailability() *Error {
	return newError(CodeNoAvailability, "no candidate slots were found in the requested range",
		"extend the date range or relax working hours")
}

func errSevereShortage(candidates, contacts int) *Error {
	return newError(CodeSevereShortage,
		fmt.Sprintf("only %d candidate slots for %d contacts", candidates, contacts),
		"extend the date range, add working hours, or reduce the contact batch")
}

func errInvalidTimezone(tz string) *Error {
	return newError(CodeInvalidTimezone, fmt.Sprintf("timezone %q does not resolve", tz), "")
}

func errInvalidDateRange(reason string) *Error {
	return newError(CodeInvalidDateRange, reason, "request a range where start < end and span <= 30 days")
}

func errPastDateRange() *Error {
	return newError(CodePastDateRange, "requested range starts more than 24h in the past",
		"shift the range to start no earlier than 24h before now")
}

func errTooManyContacts(count, max int) *Error {
	return newError(CodeTooManyContacts, fmt.Sprintf("%d contacts exceeds the batch limit of %d", count, max),
		"split the batch into multiple requests")
}
