package starpick

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

// APIError is a non-2xx backend response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Fields     map[string][]string
	Body       string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status=%d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// Unwrap exposes the usecase sentinel for the status code, plus the field
// errors when the body carried any.
func (e *APIError) Unwrap() []error {
	out := make([]error, 0, 2)
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		out = append(out, usecase.ErrUnauthorized)
	case e.StatusCode == http.StatusNotFound:
		out = append(out, usecase.ErrNotFound)
	case e.StatusCode == http.StatusConflict:
		out = append(out, usecase.ErrConflict)
	case e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity:
		out = append(out, usecase.ErrInvalidInput)
	case e.StatusCode >= http.StatusInternalServerError:
		out = append(out, usecase.ErrDependencyUnavailable)
	}
	if len(e.Fields) > 0 {
		out = append(out, &usecase.FieldErrors{Message: e.Message, Fields: e.Fields})
	}
	return out
}

type errorBody struct {
	Message string `json:"message"`
	Error   any    `json:"error"`
	Errors  any    `json:"errors"`
}

func newAPIError(method, path string, status int, raw []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       abbreviateBody(raw),
	}

	var body errorBody
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(body.Message)

	for _, candidate := range []any{body.Errors, body.Error} {
		switch v := candidate.(type) {
		case string:
			if apiErr.Message == "" {
				apiErr.Message = strings.TrimSpace(v)
			}
		case map[string]any:
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string][]string, len(v))
			}
			for field, messages := range v {
				apiErr.Fields[field] = append(apiErr.Fields[field], flattenMessages(messages)...)
			}
		}
	}
	return apiErr
}

func flattenMessages(v any) []string {
	switch msgs := v.(type) {
	case string:
		return []string{msgs}
	case []any:
		out := make([]string, 0, len(msgs))
		for _, m := range msgs {
			if s, ok := m.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{fmt.Sprint(msgs)}
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 512
	value := strings.TrimSpace(string(raw))
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
