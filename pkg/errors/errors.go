package errors

import "fmt"

// HTTPError carries an HTTP status alongside a user-facing message.
// Delivery layers build these in mapError; pkg/response renders them.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
