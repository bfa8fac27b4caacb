package refdata

import (
	"strconv"
	"strings"
)

// ExternalID is the provider identifier. The backend serializes it as a number
// on some resources and as a string on others.
type ExternalID string

func (e *ExternalID) UnmarshalJSON(raw []byte) error {
	value := strings.TrimSpace(string(raw))
	if value == "null" {
		*e = ""
		return nil
	}
	*e = ExternalID(strings.Trim(value, `"`))
	return nil
}

func (e ExternalID) MarshalJSON() ([]byte, error) {
	if e == "" {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(string(e))), nil
}

func (e ExternalID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(e), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (e ExternalID) String() string {
	return string(e)
}
