package capitol

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClientErrorMessage(t *testing.T) {
	err := &ClientError{
		Type:    ErrorTypeNotConfigured,
		Message: "no API key configured",
	}
	expected := "NotConfigured: no API key configured"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestClientErrorMessageWithStatusAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ClientError{
		Type:       ErrorTypeTransport,
		Message:    "request dispatch failed",
		StatusCode: 503,
		Cause:      cause,
	}
	expected := "Transport: request dispatch failed (status 503) (connection refused)"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestClientErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &ClientError{Type: ErrorTypeTransport, Message: "m", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the cause through Unwrap")
	}

	var nilErr *ClientError
	if nilErr.Unwrap() != nil {
		t.Error("Expected nil receiver Unwrap to return nil")
	}
}

func TestClientErrorIsMatchesOnType(t *testing.T) {
	err := fmt.Errorf("fetch failed: %w", &ClientError{Type: ErrorTypeParse, Message: "bad body"})

	if !errors.Is(err, &ClientError{Type: ErrorTypeParse}) {
		t.Error("Expected errors.Is to match on Type")
	}
	if errors.Is(err, &ClientError{Type: ErrorTypeTransport}) {
		t.Error("Expected mismatched Type to not match")
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		err  error
		want func(error) bool
		name string
	}{
		{&ClientError{Type: ErrorTypeNotConfigured}, IsNotConfigured, "IsNotConfigured"},
		{&ClientError{Type: ErrorTypeInvalidArgument}, IsInvalidArgument, "IsInvalidArgument"},
		{&ClientError{Type: ErrorTypeTransport}, IsTransport, "IsTransport"},
		{&ClientError{Type: ErrorTypeParse}, IsParse, "IsParse"},
	}

	for _, tt := range tests {
		if !tt.want(tt.err) {
			t.Errorf("%s failed to recognize %v", tt.name, tt.err)
		}
		if tt.want(fmt.Errorf("wrapped: %w", tt.err)) != true {
			t.Errorf("%s failed on wrapped error", tt.name)
		}
		if tt.want(errors.New("plain")) {
			t.Errorf("%s matched an unrelated error", tt.name)
		}
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited sentinel", ErrRateLimited, true},
		{"rate limit error", &ClientError{Type: ErrorTypeRateLimit, Cause: ErrRateLimited}, true},
		{"network failure", &ClientError{Type: ErrorTypeTransport, StatusCode: 0}, true},
		{"server error", &ClientError{Type: ErrorTypeTransport, StatusCode: 500}, true},
		{"too many requests", &ClientError{Type: ErrorTypeTransport, StatusCode: http.StatusTooManyRequests}, true},
		{"not found", &ClientError{Type: ErrorTypeTransport, StatusCode: 404}, false},
		{"parse failure", &ClientError{Type: ErrorTypeParse}, false},
		{"invalid argument", &ClientError{Type: ErrorTypeInvalidArgument}, false},
		{"not configured", &ClientError{Type: ErrorTypeNotConfigured}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
