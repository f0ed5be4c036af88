package nuclino

import "encoding/json"

// Response status values.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope around every API response. Data is set only
// when Status is "success".
type Response[T any] struct {
	Status  string  `json:"status"`
	Message *string `json:"message,omitempty"`
	Data    *T      `json:"data,omitempty"`
}

// IsSuccess reports whether the service accepted the request.
func (r *Response[T]) IsSuccess() bool { return r.Status == StatusSuccess }

// IsClientError reports whether the service blamed the request.
func (r *Response[T]) IsClientError() bool { return r.Status == StatusFail }

// IsServerError reports whether the service reported its own failure.
func (r *Response[T]) IsServerError() bool { return r.Status == StatusError }

// ErrorMessage returns the service message, or "" when none was sent.
func (r *Response[T]) ErrorMessage() string {
	if r.Message == nil {
		return ""
	}
	return *r.Message
}

// List wraps paginated results. Order is the server's pagination order.
type List[T any] struct {
	Results []T `json:"results"`
}

// Len returns the number of results.
func (l *List[T]) Len() int { return len(l.Results) }

// Last returns the final result, whose id is the "after" cursor for the next page.
func (l *List[T]) Last() (T, bool) {
	if len(l.Results) == 0 {
		var zero T
		return zero, false
	}
	return l.Results[len(l.Results)-1], true
}

// decodeEnvelope unwraps an API response body. httpStatus selects between
// ClientError and ServerError when the envelope does not report success.
func decodeEnvelope[T any](httpStatus int, body []byte) (T, error) {
	var zero T

	var resp Response[T]
	if err := json.Unmarshal(body, &resp); err != nil {
		return zero, &JSONError{Err: err}
	}

	if !resp.IsSuccess() {
		return zero, newStatusError(httpStatus, resp.ErrorMessage())
	}
	if resp.Data == nil {
		return zero, ErrNoDataReturned
	}
	return *resp.Data, nil
}
