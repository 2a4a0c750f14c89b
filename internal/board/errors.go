package board

import "fmt"

// ClientError marks malformed or invalid input: missing required fields,
// unparseable identifiers, or bad entity references supplied at creation
// or update time. Handlers answer it with 400.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

func clientErrorf(format string, args ...any) error {
	return &ClientError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks operations targeting a task or list that does not
// exist. Handlers answer it with 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
