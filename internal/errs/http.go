package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "images", "error": "must contain at most 2 items" }
type FieldError struct {
	// Field is the path of the offending value (e.g. "languagesUsed.0.percent").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and serializes
// directly into the failure envelope:
//
//	{ "success": false, "message": "...", "code": "BAD_REQUEST", "errors": [...] }
//
// Status never reaches the body; it selects the response status code.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`

	// Override tells the error handler the message is safe to show as-is.
	Override bool `json:"-"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
// It does NOT compare Code/Status, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// Envelope is the JSON body written for a failed request.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Envelope converts the error into its response body.
func (e *HTTPError) Envelope() Envelope {
	return Envelope{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
