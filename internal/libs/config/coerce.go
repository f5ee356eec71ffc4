package config

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Int is an integer setting. Valid is false when the raw value had no
// parseable integer prefix; such a value prints as NaN and encodes as null.
type Int struct {
	Value int
	Valid bool
}

// NaN is the marker for an integer setting that failed to parse.
var NaN = Int{}

// IntOf returns a valid Int holding n.
func IntOf(n int) Int {
	return Int{Value: n, Valid: true}
}

// IsNaN reports whether the setting failed to parse.
func (i Int) IsNaN() bool {
	return !i.Valid
}

func (i Int) String() string {
	if !i.Valid {
		return "NaN"
	}
	return strconv.Itoa(i.Value)
}

// MarshalJSON encodes NaN as null.
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(i.Value)), nil
}

// UnmarshalJSON accepts a number or null.
func (i *Int) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*i = NaN
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = IntOf(n)
	return nil
}

// MarshalYAML encodes NaN as null.
func (i Int) MarshalYAML() (interface{}, error) {
	if !i.Valid {
		return nil, nil
	}
	return i.Value, nil
}

// ParseBool is true only for the exact literal "true".
func ParseBool(raw string) bool {
	return raw == "true"
}

// ParseInt reads the leading integer of raw. Leading whitespace and a
// sign are accepted, a 0x prefix selects hexadecimal, and anything after
// the digits is ignored. No digits yields NaN; a value that overflows
// int saturates at the int bounds.
func ParseInt(raw string) Int {
	s := strings.TrimLeftFunc(raw, isLeadingSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return NaN
	}

	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	// ParseInt clamps to the bounds on ErrRange.
	n, err := strconv.ParseInt(digits, base, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return NaN
	}
	return IntOf(int(n))
}

// StringOr returns raw, or fallback when raw is empty.
func StringOr(raw, fallback string) string {
	if raw != "" {
		return raw
	}
	return fallback
}

// IntOr substitutes fallback for an empty raw value and then parses.
// The fallback is textual so that a malformed fallback behaves exactly
// like a malformed value.
func IntOr(raw, fallback string) Int {
	return ParseInt(StringOr(raw, fallback))
}

// BoolOr substitutes fallback for an empty raw value and then applies
// ParseBool.
func BoolOr(raw, fallback string) bool {
	return ParseBool(StringOr(raw, fallback))
}

// isLeadingSpace also accepts the byte order mark, which parseInt-style
// parsers treat as whitespace.
func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
