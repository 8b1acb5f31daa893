package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexibleString accepts a JSON string, number or boolean and keeps its textual form.
// null decodes to the empty string, which callers treat as absent.
type FlexibleString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	case '{', '[':
		return fmt.Errorf("expected string or number, got %s", trimmed)
	default:
		// numbers and booleans keep their literal text
		*f = FlexibleString(trimmed)
		return nil
	}
}

// String returns the textual value
func (f FlexibleString) String() string {
	return string(f)
}

// IsEmpty reports whether the value is absent
func (f FlexibleString) IsEmpty() bool {
	return f == ""
}

// IntOrDefault parses the leading integer of the value, falling back to defaultValue when
// the value is absent or does not start with an integer ("12abc" -> 12, "5.7" -> 5).
func (f FlexibleString) IntOrDefault(defaultValue int) int {
	value, ok := parseLeadingInt(string(f))
	if !ok {
		return defaultValue
	}
	return value
}

func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return value, true
}
