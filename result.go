package arghs

import (
	"maps"
	"slices"
)

// Result is the output of a single parse.
//
// Option values and named arguments share one key space, addressed with [Result.Get] and friends.
// Positional, unknown, diagnostic, and overflow data live in separate channels that can never collide with those keys.
// Every accessor returns a copy, so a Result can't be modified by callers.
type Result struct {
	values      map[string]Value
	positional  []string
	unknown     map[string]Value
	diagnostics map[string]string
	overflow    []string
}

func newResult() *Result {
	return &Result{
		values:      map[string]Value{},
		unknown:     map[string]Value{},
		diagnostics: map[string]string{},
	}
}

// Get returns the value stored for key.
// Named arguments that could not be bound are present with an [Absent] value.
func (r *Result) Get(key string) (Value, bool) {
	val, ok := r.values[key]
	return val, ok
}

// Has reports whether key is present, including named arguments bound to [Absent].
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Bool reports whether key is present with a non-absent value.
func (r *Result) Bool(key string) bool {
	return r.values[key].Bool()
}

// Count returns [Value.Count] for key, which is 0 if it's missing.
func (r *Result) Count(key string) int {
	return r.values[key].Count()
}

// String returns [Value.String] for key, which is empty if it's missing.
func (r *Result) String(key string) string {
	return r.values[key].String()
}

// Strings returns [Value.Strings] for key.
func (r *Result) Strings(key string) []string {
	return r.values[key].Strings()
}

// Keys returns the sorted option and named argument keys present in the Result.
func (r *Result) Keys() []string {
	return slices.Sorted(maps.Keys(r.values))
}

// Positional returns the leftover non-option tokens that weren't bound to a named argument.
func (r *Result) Positional() []string {
	return slices.Clone(r.positional)
}

// Unknown returns the values collected for unrecognized options, keyed by option name.
func (r *Result) Unknown() map[string]Value {
	return maps.Clone(r.unknown)
}

// Diagnostics returns the soft violations recorded while parsing, keyed by option name.
func (r *Result) Diagnostics() map[string]string {
	return maps.Clone(r.diagnostics)
}

// Overflow returns the raw tokens following a bare "--" terminator.
func (r *Result) Overflow() []string {
	return slices.Clone(r.overflow)
}
