package server

import (
	"net/http"

	"github.com/jonathan/job-platform/internal/extract"
	"github.com/jonathan/job-platform/internal/jobs"
	"github.com/jonathan/job-platform/internal/pipeline"
)

// ErrUsernameTaken indicates the username is already registered.
type ErrUsernameTaken struct {
	Username string
}

func (e *ErrUsernameTaken) Error() string {
	return "username already registered: " + e.Username
}

// ErrEmailTaken indicates the email is already registered.
type ErrEmailTaken struct {
	Email string
}

func (e *ErrEmailTaken) Error() string {
	return "email already registered: " + e.Email
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Input errors are the caller's fault (400 class); extraction and provider
// failures are server side (500).
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUsernameTaken, *ErrEmailTaken:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *extract.UnsupportedFormatError, *extract.NoTextContentError:
		return http.StatusBadRequest
	case *extract.ExtractionError:
		return http.StatusInternalServerError
	case *jobs.NotFoundError:
		return http.StatusNotFound
	case *pipeline.NoProviderError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
