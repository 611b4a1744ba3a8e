package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingID reports a success response that omitted the identifier
// the caller needs to keep tracking the resource.
var ErrMissingID = errors.New("response did not include an identifier")

// RequestError is returned for any non-success HTTP status. Message
// carries the server-provided error text when one could be extracted.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// errorMessage extracts a human-readable message from an error
// response body, probing the field names the API is known to use.
func errorMessage(status int, body []byte) string {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err == nil {
		for _, field := range []string{"error", "message", "msg"} {
			var s string
			if err := json.Unmarshal(probe[field], &s); err == nil && s != "" {
				return s
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}
