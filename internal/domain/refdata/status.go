package refdata

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the 1/0 activation flag the backend uses for countries, leagues,
// teams and players.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) Inverse() Status {
	if s.IsActive() {
		return StatusInactive
	}
	return StatusActive
}

func (s Status) Label() string {
	if s.IsActive() {
		return "Active"
	}
	return "Inactive"
}

func (s Status) String() string {
	return s.Label()
}

// UnmarshalJSON accepts 1/0, true/false and their quoted forms.
func (s *Status) UnmarshalJSON(raw []byte) error {
	value := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	switch strings.ToLower(value) {
	case "", "null", "0", "false", "inactive":
		*s = StatusInactive
		return nil
	case "1", "true", "active":
		*s = StatusActive
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid status %q", value)
	}
	if n != 0 {
		*s = StatusActive
	} else {
		*s = StatusInactive
	}
	return nil
}

func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "active", "on", "true":
		return StatusActive, nil
	case "0", "inactive", "off", "false":
		return StatusInactive, nil
	default:
		return StatusInactive, fmt.Errorf("invalid status %q: use active or inactive", v)
	}
}
