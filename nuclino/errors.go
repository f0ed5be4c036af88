package nuclino

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAPIKeyNotFound is returned when no API key is present in the environment.
	ErrAPIKeyNotFound = errors.New("cannot find an API key in the process environment")

	// ErrNilConfig is returned by NewClientFromConfig when given no Config.
	ErrNilConfig = errors.New("cannot create a client from a nil config")

	// ErrNoDataReturned is returned when a success envelope carries no data field.
	ErrNoDataReturned = errors.New("didn't get a data field on the response")

	// ErrProgrammer marks a broken internal invariant. Please report it as a bug.
	ErrProgrammer = errors.New("programmer error, please file a bug")
)

// ClientError is a 4xx failure reported by the Nuclino service.
type ClientError struct {
	Status  int
	Message string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error: status=%d; %s", e.Status, e.Message)
}

// ServerError is a 5xx failure reported by the Nuclino service.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("nuclino service error: status=%d; %s", e.Status, e.Message)
}

// RequestError is a transport failure before any HTTP status was obtained.
// Message holds the transport's error text verbatim.
type RequestError struct {
	Method  string
	URL     string
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request error: %s", e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

// IOError wraps a local I/O failure such as a truncated response body.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// JSONError wraps a failure to encode a request or decode a response.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string { return e.Err.Error() }

func (e *JSONError) Unwrap() error { return e.Err }

// newStatusError maps an HTTP status to ClientError (< 500) or ServerError.
func newStatusError(status int, message string) error {
	if status < http.StatusInternalServerError {
		return &ClientError{Status: status, Message: message}
	}
	return &ServerError{Status: status, Message: message}
}

// IsClientError reports whether err is a 4xx failure from the service.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsServerError reports whether err is a 5xx failure from the service.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Status == http.StatusNotFound
}

// ErrorKind returns a short label for err, used for metrics.
func ErrorKind(err error) string {
	var (
		ce  *ClientError
		se  *ServerError
		re  *RequestError
		ioe *IOError
		je  *JSONError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ce):
		return "client_error"
	case errors.As(err, &se):
		return "server_error"
	case errors.As(err, &re):
		return "request_error"
	case errors.As(err, &ioe):
		return "io_error"
	case errors.As(err, &je):
		return "json_error"
	case errors.Is(err, ErrNoDataReturned):
		return "no_data"
	case errors.Is(err, ErrAPIKeyNotFound):
		return "api_key_not_found"
	case errors.Is(err, ErrNilConfig):
		return "nil_config"
	case errors.Is(err, ErrProgrammer):
		return "programmer_error"
	default:
		return "unknown"
	}
}
