// Package casing rewrites hyphenated compound option names into camelCase or snake_case keys.
package casing

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects how compound names are rewritten.
type Mode int

const (
	Camel Mode = iota // Camel rewrites "user-id" to "userId".
	Snake             // Snake rewrites "user-id" to "user_id".
	None              // None leaves names untouched.
)

var ErrUnknownMode = errors.New("unknown casing mode")

func (m Mode) String() string {
	switch m {
	case Camel:
		return "camelCase"
	case Snake:
		return "snake_case"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the textual form of a [Mode] back to its value.
// Both "camelCase" and "camel" are accepted, likewise "snake_case" and "snake".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "camelcase", "camel":
		return Camel, nil
	case "snake_case", "snake":
		return Snake, nil
	case "none":
		return None, nil
	}
	return None, fmt.Errorf("%w '%s': must be one of 'camelCase', 'snake_case', or 'none'", ErrUnknownMode, s)
}

// UnmarshalText allows a [Mode] to be decoded from configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Apply rewrites name according to the [Mode].
// Names without a hyphen are always returned as-is.
func (m Mode) Apply(name string) string {
	switch m {
	case Camel:
		return CamelCase(name)
	case Snake:
		return SnakeCase(name)
	default:
		return name
	}
}

// CamelCase joins the hyphenated segments of name, upper-casing the first letter and lower-casing the rest of each segment after the first.
func CamelCase(name string) string {
	segments := strings.Split(name, "-")
	if len(segments) < 2 {
		return name
	}
	var buf strings.Builder
	buf.WriteString(segments[0])
	for _, seg := range segments[1:] {
		first, size := utf8.DecodeRuneInString(seg)
		if size == 0 {
			continue
		}
		buf.WriteRune(unicode.ToUpper(first))
		buf.WriteString(strings.ToLower(seg[size:]))
	}
	return buf.String()
}

// SnakeCase joins the hyphenated segments of name with underscores.
// The first letter of each segment after the first is lower-cased, the rest is kept.
func SnakeCase(name string) string {
	segments := strings.Split(name, "-")
	if len(segments) < 2 {
		return name
	}
	for i := 1; i < len(segments); i++ {
		first, size := utf8.DecodeRuneInString(segments[i])
		if size == 0 {
			continue
		}
		segments[i] = string(unicode.ToLower(first)) + segments[i][size:]
	}
	return strings.Join(segments, "_")
}
