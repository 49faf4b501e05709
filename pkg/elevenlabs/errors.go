package elevenlabs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrMissingInput is returned when a request carries no input text.
	ErrMissingInput = errors.New("missing input text")

	// ErrMissingAPIKey is returned when the client was constructed with an
	// empty API key.
	ErrMissingAPIKey = errors.New("missing API key")
)

// InputTooLongError is returned when the input text exceeds MaxInputLength.
type InputTooLongError struct {
	Length int
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("input text too long: %d characters (max: %d)", e.Length, MaxInputLength)
}

// VoiceSettingError reports a voice setting outside the [0.0, 1.0] range.
// Multiple violations are aggregated into a single *multierror.Error.
type VoiceSettingError struct {
	Field string
	Value float64
}

func (e *VoiceSettingError) Error() string {
	return fmt.Sprintf("invalid voice setting %s: %v (must be between 0.0 and 1.0)", e.Field, e.Value)
}

// InvalidSeedError reports a seed outside the unsigned 32-bit range the
// upstream API accepts.
type InvalidSeedError struct {
	Seed int64
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("invalid seed value: %d (must be between 0 and %d)", e.Seed, maxSeed)
}

// EncodeError wraps a failure to serialize the request body.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "serialization error: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// TransportError wraps a failure that happened before any well-formed
// response was received, such as connection refusal, DNS failure, or a
// context deadline firing mid-request.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "HTTP client error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the upstream API. Type and Code are
// only set when the response body carried the structured error shape.
type APIError struct {
	StatusCode int
	Message    string
	Type       *string
	Code       *string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// parseAPIError classifies a non-2xx upstream response. Structured bodies of
// the shape {"error": {"message", "type", "code"}} are decoded field by
// field; anything else falls back to the raw body text, or to the HTTP
// status line when the body is empty.
func parseAPIError(logger *slog.Logger, resp *http.Response, body []byte) *APIError {
	if logger == nil {
		logger = slog.Default()
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    lo.CoalesceOrEmpty(resp.Status, http.StatusText(resp.StatusCode)),
	}

	var parsed map[string]any

	err := json.Unmarshal(body, &parsed)
	if err == nil {
		errorMap, ok := parsed["error"].(map[string]any)
		if ok {
			if message, ok := errorMap["message"].(string); ok && message != "" {
				apiErr.Message = message
			}

			if errorType, ok := errorMap["type"].(string); ok && errorType != "" {
				apiErr.Type = lo.ToPtr(errorType)
			}

			if code, ok := errorMap["code"].(string); ok && code != "" {
				apiErr.Code = lo.ToPtr(code)
			}

			return apiErr
		}
	}

	attrs := []any{
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	}
	if resp.Request != nil && resp.Request.URL != nil {
		attrs = append(attrs, slog.String("url", resp.Request.URL.String()))
	}

	logger.Error("unknown unexpected error response returned", attrs...)

	if raw := strings.TrimSpace(string(body)); raw != "" {
		apiErr.Message = raw
	}

	return apiErr
}
