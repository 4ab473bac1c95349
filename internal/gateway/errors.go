package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedMethod is returned for any method other than GET, POST, PUT
// and DELETE. No request is sent.
var ErrUnsupportedMethod = errors.New("gateway: unsupported method")

// Generic messages used when an error body carries no usable message.
const (
	MessageUnreadableError = "An error occurred"
	MessageRequestFailed   = "Request failed"
)

// Kind classifies a failed call.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindTimeout
	KindSessionExpired
	KindHTTP
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindSessionExpired:
		return "session_expired"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String. Unrecognised names yield
// KindUnknown.
func ParseKind(s string) Kind {
	for k := KindNetwork; k <= KindDecode; k++ {
		if k.String() == s {
			return k
		}
	}
	return KindUnknown
}

// NetworkError is a transport failure unrelated to the timeout ceiling:
// connection refused, DNS, reset, or the caller cancelling the context.
type NetworkError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
func (e *NetworkError) Kind() Kind    { return KindNetwork }

// TimeoutError means the server did not answer within the ceiling. The
// in-flight request has been cancelled by the time the caller sees it.
type TimeoutError struct {
	Method   string
	Endpoint string
	After    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s %s: timed out after %s", e.Method, e.Endpoint, e.After)
}

func (e *TimeoutError) Unwrap() error { return context.DeadlineExceeded }
func (e *TimeoutError) Kind() Kind    { return KindTimeout }

// SessionExpiredError is returned for a 401. The session store has already
// been cleared and the expiry hook has already run.
type SessionExpiredError struct {
	Method   string
	Endpoint string
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("%s %s: session expired", e.Method, e.Endpoint)
}

func (e *SessionExpiredError) Kind() Kind { return KindSessionExpired }

// HTTPError is any other non-2xx response.
type HTTPError struct {
	Method   string
	Endpoint string
	Status   int
	Message  string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Endpoint, e.Status, e.Message)
}

func (e *HTTPError) Kind() Kind { return KindHTTP }

// DecodeError means a success body could not be parsed as JSON, or could not
// be decoded into the caller's type.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
func (e *DecodeError) Kind() Kind    { return KindDecode }

// KindOf returns the Kind of err, or KindUnknown when err did not come from
// the gateway.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// UserMessage turns a gateway error into text suitable for a toast.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	switch KindOf(err) {
	case KindTimeout:
		return "Request timed out. Please try again."
	case KindSessionExpired:
		return "Your session has expired. Please login again."
	case KindNetwork:
		return "Unable to reach the store. Check your connection and try again."
	case KindDecode:
		return "The store sent an unexpected response."
	default:
		return err.Error()
	}
}
