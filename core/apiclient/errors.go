package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNetwork is returned when no response was received at all: DNS failure,
// refused connection, or the transport's own timeout.
var ErrNetwork = errors.New("apiclient: no response from backend")

// ErrDecodeResponse is returned when a 2xx body cannot be decoded.
var ErrDecodeResponse = errors.New("apiclient: failed to decode response")

// ErrEncodeRequest is returned when a request cannot be built locally.
var ErrEncodeRequest = errors.New("apiclient: failed to build request")

// ErrInvalidBaseURL is returned when the configured base URL is unusable.
var ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")

// Error is a backend rejection (4xx/5xx) with its payload preserved
// verbatim, so field-level messages like "username taken" reach the UI
// unmodified instead of being collapsed into a generic string.
type Error struct {
	StatusCode     int
	Fields         map[string][]string
	NonFieldErrors []string
	Detail         string
}

// Error implements the error interface using the backend's own wording.
func (e *Error) Error() string {
	if msg := e.Message(); msg != "" {
		return msg
	}
	return fmt.Sprintf("backend rejected request with status %d", e.StatusCode)
}

// Message returns the most specific backend-supplied text: the first field
// error, then non-field errors, then the detail string.
func (e *Error) Message() string {
	for _, field := range fieldOrder {
		if msgs := e.Fields[field]; len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", field, strings.Join(msgs, " "))
		}
	}
	for field, msgs := range e.Fields {
		if len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", field, strings.Join(msgs, " "))
		}
	}
	if len(e.NonFieldErrors) > 0 {
		return strings.Join(e.NonFieldErrors, "\n")
	}
	return e.Detail
}

// fieldOrder fixes which field error wins when several are present,
// mirroring the precedence the backend's forms use.
var fieldOrder = []string{"username", "email", "password1", "password2", "new_password", "verification_code"}

// IsUnauthorized reports whether err is a backend 401, the signal that the
// presented access token is no longer accepted.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// decodeError builds an *Error from a non-2xx response body. The backend
// answers with JSON keyed by field name, plus the conventional
// "non_field_errors", "detail" and "error" keys; anything unparseable is
// kept as detail text.
func decodeError(statusCode int, body io.Reader) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		Fields:     map[string][]string{},
	}

	raw, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		apiErr.Detail = strings.TrimSpace(string(raw))
		return apiErr
	}

	for key, value := range payload {
		switch key {
		case "detail", "error":
			var s string
			if json.Unmarshal(value, &s) == nil {
				apiErr.Detail = s
			}
		case "non_field_errors":
			apiErr.NonFieldErrors = decodeMessages(value)
		default:
			if msgs := decodeMessages(value); len(msgs) > 0 {
				apiErr.Fields[key] = msgs
			}
		}
	}
	return apiErr
}

// decodeMessages accepts both "msg" and ["msg", ...] value shapes.
func decodeMessages(raw json.RawMessage) []string {
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return list
	}
	var single string
	if json.Unmarshal(raw, &single) == nil && single != "" {
		return []string{single}
	}
	return nil
}
