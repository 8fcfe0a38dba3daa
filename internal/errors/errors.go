package errors

import "net/http"

// Kind classifies an application error into the closed taxonomy the service
// layer exposes. Every backend failure is normalized into one of these.
type Kind int

const (
	// KindBadRequest marks invalid input, including uniqueness conflicts.
	KindBadRequest Kind = iota
	// KindUnauthorized marks credential or token failures.
	KindUnauthorized
	// KindNotFound marks an absent referenced entity.
	KindNotFound
	// KindInternal marks unclassified backend failures.
	KindInternal
)

// Error is an application error tagged with its taxonomy kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest builds a KindBadRequest error.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Unauthorized builds a KindUnauthorized error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound builds a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal builds a KindInternal error.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf returns the taxonomy kind of err, or KindInternal for anything
// outside the taxonomy.
func KindOf(err error) Kind {
	if appErr, ok := err.(*Error); ok {
		return appErr.Kind
	}
	return KindInternal
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps taxonomy errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	appErr, ok := err.(*Error)
	if !ok {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
	switch appErr.Kind {
	case KindBadRequest:
		return NewHTTPError(http.StatusBadRequest, appErr.Message, "BAD_REQUEST")
	case KindUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, appErr.Message, "UNAUTHORIZED")
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, appErr.Message, "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
