package forms

import "errors"

var (
	ErrInvalidDataURI = errors.New("invalid image data uri")
	ErrInvalidBase64  = errors.New("invalid base64 payload")
)

// ValidationError reports a user-correctable problem with one field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: HumanizeField(field) + " is required."}
}

func invalidDate(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: "Invalid date format for " + HumanizeField(field) + ". Use YYYY-MM-DD.",
	}
}
