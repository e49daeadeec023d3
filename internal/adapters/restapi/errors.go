package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

const maxMessageLen = 200

// APIError is a failed call. It unwraps to one of domain.ErrUnauthorized,
// domain.ErrConflict or domain.ErrRequestFailed.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v: %s", e.Method, e.Path, e.kind, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d %v", e.Method, e.Path, e.StatusCode, e.kind)
	}
	return fmt.Sprintf("%s %s: %d %v: %s", e.Method, e.Path, e.StatusCode, e.kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.kind }

func (e *APIError) ServerMessage() string { return e.Message }

var _ domain.ServerError = (*APIError)(nil)

func classify(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusConflict:
		return domain.ErrConflict
	}
	return domain.ErrRequestFailed
}

// serverMessage pulls the human readable part out of an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, m := range []string{payload.Message, payload.Error, payload.Detail} {
			if m != "" {
				return truncate(m)
			}
		}
	}
	return truncate(strings.TrimSpace(string(body)))
}

// truncate bounds s to maxMessageLen bytes without splitting a rune; the
// result is always valid UTF-8.
func truncate(s string) string {
	s = strings.ToValidUTF8(s, "")
	if len(s) <= maxMessageLen {
		return s
	}
	n := maxMessageLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
