package nuclino

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNewStatusError(t *testing.T) {
	tests := []struct {
		status     int
		wantClient bool
	}{
		{400, true},
		{401, true},
		{404, true},
		{429, true},
		{499, true},
		{500, false},
		{502, false},
		{503, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := newStatusError(tt.status, "msg")
			if IsClientError(err) != tt.wantClient {
				t.Errorf("IsClientError() = %v, want %v", IsClientError(err), tt.wantClient)
			}
			if IsServerError(err) == tt.wantClient {
				t.Errorf("IsServerError() = %v, want %v", IsServerError(err), !tt.wantClient)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"client", &ClientError{Status: 404, Message: "Not found"}, "client error: status=404; Not found"},
		{"server", &ServerError{Status: 500, Message: "Oops"}, "nuclino service error: status=500; Oops"},
		{"server empty message", &ServerError{Status: 502}, "nuclino service error: status=502; "},
		{"request", &RequestError{Message: "dial tcp: connection refused"}, "request error: dial tcp: connection refused"},
		{"io", &IOError{Err: io.ErrUnexpectedEOF}, "unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"404", &ClientError{Status: 404}, true},
		{"wrapped 404", fmt.Errorf("nuclino_get_page failed: %w", &ClientError{Status: 404}), true},
		{"403", &ClientError{Status: 403}, false},
		{"server", &ServerError{Status: 500}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	if !errors.Is(&IOError{Err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF) {
		t.Error("IOError should unwrap to its cause")
	}
	if !errors.Is(&RequestError{Err: io.EOF, Message: "EOF"}, io.EOF) {
		t.Error("RequestError should unwrap to its cause")
	}
	if !errors.Is(&JSONError{Err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF) {
		t.Error("JSONError should unwrap to its cause")
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ClientError{Status: 400}, "client_error"},
		{&ServerError{Status: 500}, "server_error"},
		{&RequestError{Err: io.EOF}, "request_error"},
		{&IOError{Err: io.EOF}, "io_error"},
		{&JSONError{Err: io.EOF}, "json_error"},
		{ErrNoDataReturned, "no_data"},
		{ErrAPIKeyNotFound, "api_key_not_found"},
		{ErrNilConfig, "nil_config"},
		{fmt.Errorf("wrapped: %w", ErrProgrammer), "programmer_error"},
		{errors.New("other"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
