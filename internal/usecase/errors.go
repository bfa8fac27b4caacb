package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrMalformedResponse     = errors.New("malformed response")
	ErrConflict              = errors.New("conflict")
	ErrPageOutOfRange        = pagination.ErrPageOutOfRange
	ErrBusy                  = errors.New("request already in progress")
)

// FieldErrors carries validation messages keyed by form field.
type FieldErrors struct {
	Message string
	Fields  map[string][]string
}

func (e *FieldErrors) Error() string {
	if len(e.Fields) == 0 {
		if e.Message == "" {
			return ErrInvalidInput.Error()
		}
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return strings.Join(parts, ", ")
}

func (e *FieldErrors) Unwrap() error {
	return ErrInvalidInput
}

// First returns the first message for field, or "".
func (e *FieldErrors) First(field string) string {
	if e == nil || len(e.Fields[field]) == 0 {
		return ""
	}
	return e.Fields[field][0]
}

func (e *FieldErrors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func isUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
