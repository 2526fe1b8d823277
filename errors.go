package capitol

import (
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error type names carried in ClientError.Type.
const (
	// ErrorTypeNotConfigured marks calls rejected before any network attempt
	// because no API key is configured.
	ErrorTypeNotConfigured = "NotConfigured"

	// ErrorTypeInvalidArgument marks calls rejected locally for malformed
	// input, such as an empty bioguide ID.
	ErrorTypeInvalidArgument = "InvalidArgument"

	// ErrorTypeTransport marks network failures, timeouts and non-2xx
	// responses from the API.
	ErrorTypeTransport = "Transport"

	// ErrorTypeParse marks response bodies that could not be converted into
	// a domain record.
	ErrorTypeParse = "Parse"

	// ErrorTypeRateLimit marks calls denied by the opt-in rate-limit guard.
	ErrorTypeRateLimit = "RateLimit"
)

// ErrRateLimited is returned (wrapped) when the rate-limit guard denies a
// request before dispatch.
var ErrRateLimited = errors.New("capitol: rate limited")

// ClientError is the error type returned by all Client operations. Type is
// always one of the ErrorType constants; the remaining fields are populated
// where they apply.
type ClientError struct {
	Type       string
	Message    string
	StatusCode int    // HTTP status for transport failures, 0 otherwise
	URL        string // request URL without query parameters
	Payload    string // offending payload excerpt for parse failures
	Cause      error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is, so callers can match against a
// ClientError with only Type set.
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// IsNotConfigured reports whether err is a missing-API-key failure.
func IsNotConfigured(err error) bool { return hasErrorType(err, ErrorTypeNotConfigured) }

// IsInvalidArgument reports whether err is a malformed-input failure.
func IsInvalidArgument(err error) bool { return hasErrorType(err, ErrorTypeInvalidArgument) }

// IsTransport reports whether err is a network, timeout or non-2xx failure.
func IsTransport(err error) bool { return hasErrorType(err, ErrorTypeTransport) }

// IsParse reports whether err is a response parsing failure.
func IsParse(err error) bool { return hasErrorType(err, ErrorTypeParse) }

func hasErrorType(err error, errorType string) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Type == errorType
}

// IsTransient determines if an error represents a transient failure that
// might succeed on retry. Returns true for network errors, timeouts, 5xx
// responses, 429 and rate-limit denials. Returns false for other 4xx
// statuses, configuration errors, bad arguments and parse failures: retrying
// those reproduces the same outcome.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrRateLimited) {
		return true
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		switch clientErr.Type {
		case ErrorTypeRateLimit:
			return true
		case ErrorTypeTransport:
			if clientErr.StatusCode == 0 {
				// No status means the request never completed: a network
				// error or timeout.
				return true
			}
			return clientErr.StatusCode >= 500 ||
				clientErr.StatusCode == http.StatusTooManyRequests
		default:
			return false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return false
}
