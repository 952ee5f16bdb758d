package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts user-typed text to a number. Blank input is 0, the
// same as an untouched numeric form field.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// ParseWhole is ParseNumber restricted to whole numbers.
func ParseWhole(s string) (int, error) {
	v, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	return toWhole(v)
}

// NumberFromJSON accepts a JSON number, a numeric string or null.
func NumberFromJSON(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return ParseNumber(s)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("invalid number %s", raw)
	}
	return v, nil
}

// WholeFromJSON is NumberFromJSON restricted to whole numbers.
func WholeFromJSON(raw json.RawMessage) (int, error) {
	v, err := NumberFromJSON(raw)
	if err != nil {
		return 0, err
	}
	return toWhole(v)
}

func toWhole(v float64) (int, error) {
	if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%v is not a whole number", v)
	}
	return int(v), nil
}
