package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Sentinel errors for response conditions that carry no API error payload.
var (
	// ErrEmptyResponse is returned when the model produced no text at all.
	ErrEmptyResponse = errors.New("gemini: empty response from model")

	// ErrNoAudioData is returned when a speech response contains no inline
	// audio payload.
	ErrNoAudioData = errors.New("gemini: no audio data in response")
)

// Error represents a Gemini API error.
type Error struct {
	// Code is the HTTP status code reported by the API.
	Code int `json:"code"`

	// Status is the canonical status string (e.g. "RESOURCE_EXHAUSTED").
	Status string `json:"status"`

	// Message is the error message.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("gemini: %s (code=%d, status=%s)", e.Message, e.Code, e.Status)
}

// IsRateLimit returns true if this is a rate limit error.
func (e *Error) IsRateLimit() bool {
	return e.Code == http.StatusTooManyRequests || e.Status == "RESOURCE_EXHAUSTED"
}

// IsInvalidAPIKey returns true if the credential was rejected.
func (e *Error) IsInvalidAPIKey() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// IsInvalidRequest returns true if the request itself was malformed.
func (e *Error) IsInvalidRequest() bool {
	return e.Code == http.StatusBadRequest
}

// IsServerError returns true if this is a server-side error.
func (e *Error) IsServerError() bool {
	return e.Code >= 500
}

// Retryable returns true if the request can be retried.
func (e *Error) Retryable() bool {
	return e.IsRateLimit() || e.IsServerError()
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := gemini.AsError(err); ok {
//	    if e.IsRateLimit() {
//	        // Handle rate limiting
//	    }
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// wrapAPIError converts genai SDK errors into *Error. Other errors pass
// through unchanged.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &Error{
			Code:    apiErr.Code,
			Status:  apiErr.Status,
			Message: apiErr.Message,
		}
	}
	return err
}

// ParseError is returned when the model's text output could not be parsed as
// JSON even after repair. Raw holds the offending text for diagnosis; user
// facing layers should show a generic retry message instead of Raw.
type ParseError struct {
	Raw string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("gemini: parse model output: %v", e.Err)
}

// Unwrap returns the underlying parse error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
