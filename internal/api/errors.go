package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrMissingToken is returned when login succeeds without an access token.
var ErrMissingToken = errors.New("login response missing access_token")

// maxErrorBody bounds the response text kept on a StatusError.
const maxErrorBody = 512

// StatusError reports a response status the caller did not accept.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string // at most maxErrorBody bytes of the response
}

func newStatusError(op string, resp *response) *StatusError {
	body := resp.body
	if len(body) > maxErrorBody {
		body = strings.ToValidUTF8(body[:maxErrorBody], "")
	}
	return &StatusError{Op: op, StatusCode: resp.status, Body: body}
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, body)
}

// NetworkError reports a request that produced no usable response:
// connection failures, timeouts, cancellation, truncated bodies.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request ran out of time.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// StatusCode extracts the HTTP status from err, or 0 if err carries none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// alreadyExists matches the API's duplicate-resource message. The API has no
// machine readable duplicate code, so the body text is all there is.
func alreadyExists(body string) bool {
	return strings.Contains(strings.ToLower(body), "already exists")
}
