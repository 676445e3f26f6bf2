package teddy

import (
	"fmt"
	"strings"
)

var (
	// ErrNotAuthenticated is returned when an authenticated operation is
	// attempted without a live token.
	ErrNotAuthenticated = fmt.Errorf("teddy: not authenticated")

	// ErrNoNewMessages is the vendor's explicit empty-poll signal. It is
	// routine, not a failure; the poller swallows it between attempts.
	ErrNoNewMessages = fmt.Errorf("teddy: no new messages")

	// ErrUnexpectedResponse marks a 2xx body missing expected fields.
	ErrUnexpectedResponse = fmt.Errorf("teddy: unexpected response shape")
)

// AuthError reports a failed credential exchange: a non-2xx login response or
// a 2xx body that carries no token.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if e.StatusCode > 0 {
		if msg != "" {
			return fmt.Sprintf("teddy login http %d: %s", e.StatusCode, msg)
		}
		return fmt.Sprintf("teddy login http %d", e.StatusCode)
	}
	if msg != "" {
		return "teddy login: " + msg
	}
	return "teddy login failed"
}

// RequestError reports a transport-level or non-2xx failure on any
// authenticated call.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	body := strings.TrimSpace(e.Body)
	if e.StatusCode > 0 {
		if body != "" {
			return fmt.Sprintf("teddy http %d: %s", e.StatusCode, body)
		}
		return fmt.Sprintf("teddy http %d", e.StatusCode)
	}
	if body != "" {
		return "teddy: " + body
	}
	return "teddy request failed"
}
