package requester

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-2xx backend response. Body is the error payload exactly as
// the backend sent it, so forms can render field-level validation errors such as
// {"email": ["already exists"]}.
type APIError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *APIError) Error() string {
	if detail := e.Detail(); detail != "" {
		return fmt.Sprintf("requester: backend returned %d: %s", e.StatusCode, detail)
	}
	return fmt.Sprintf("requester: backend returned %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// IsJSON reports whether the payload was sent as JSON.
func (e *APIError) IsJSON() bool {
	return isJSON(e.ContentType)
}

// Detail returns the "detail" or "message" member of a JSON object payload, if any.
func (e *APIError) Detail() string {
	var payload map[string]json.RawMessage
	if !e.IsJSON() || json.Unmarshal(e.Body, &payload) != nil {
		return ""
	}
	for _, key := range []string{"detail", "message"} {
		var s string
		if raw, ok := payload[key]; ok && json.Unmarshal(raw, &s) == nil {
			return s
		}
	}
	return ""
}

// FieldErrors flattens a JSON object payload into one message per field.
// List values are joined with a space; non-string members are skipped.
func (e *APIError) FieldErrors() map[string]string {
	var payload map[string]json.RawMessage
	if !e.IsJSON() || json.Unmarshal(e.Body, &payload) != nil {
		return nil
	}

	fields := make(map[string]string, len(payload))
	for key, raw := range payload {
		var list []string
		if json.Unmarshal(raw, &list) == nil {
			fields[key] = strings.Join(list, " ")
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil {
			fields[key] = s
		}
	}
	return fields
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
