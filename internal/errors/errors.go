package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain. Their messages double as the client-facing
// message in the {message} envelope, so they keep the exact published wording.
var (
	// ErrInvalidCredentials is returned on a failed login, for both an unknown
	// email and a wrong password, so user existence never leaks.
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	// ErrEmailTaken is returned when signing up with an email that already exists.
	ErrEmailTaken = errors.New("Email already exists.")
	// ErrEmailInUse is returned when a profile edit targets another user's email.
	ErrEmailInUse = errors.New("Email already in use.")
	// ErrInvalidEmail is returned when an email fails the format check.
	ErrInvalidEmail = errors.New("Invalid email format.")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("Passwords don't match.")
	// ErrLanguageAlreadyAdded is returned when a (user, language) pair already exists.
	ErrLanguageAlreadyAdded = errors.New("Language is already in the user profile.")
	// ErrUserNotFound is returned when the acting user no longer exists.
	ErrUserNotFound = errors.New("User not found.")
	// ErrLanguageNotFound is returned when a catalog language does not exist.
	ErrLanguageNotFound = errors.New("Language not found.")
	// ErrUserLanguageNotFound is returned when a profile entry does not exist
	// or belongs to a different user.
	ErrUserLanguageNotFound = errors.New("Language not found in user profile.")
	// ErrRankingNotFound is returned when a ranking query yields no row for the caller.
	ErrRankingNotFound = errors.New("Ranking not found.")
)

// ErrorResponse is the error envelope returned to clients.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError carries a status code alongside a client-safe message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// BadRequest creates a 400 error with an endpoint-specific message.
func BadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// ToErrorResponse converts an HTTPError to the client envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse to
// a generic 500 so internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrEmailInUse), errors.Is(err, ErrLanguageAlreadyAdded):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrLanguageNotFound),
		errors.Is(err, ErrUserLanguageNotFound), errors.Is(err, ErrRankingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error.")
	}
}
