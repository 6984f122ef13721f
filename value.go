package arghs

import (
	"slices"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a [Value] holds.
type ValueKind int

const (
	Absent   ValueKind = iota // Absent is a named argument with no positional token to bind.
	Flag                      // Flag is a boolean switch that was given.
	Counter                   // Counter is a count switch, holding how many times it was given.
	Scalar                    // Scalar is a single string value.
	Sequence                  // Sequence is an ordered list of string values.
)

func (k ValueKind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Flag:
		return "flag"
	case Counter:
		return "counter"
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a parsed value in a [Result].
// The zero Value is [Absent].
type Value struct {
	kind   ValueKind
	count  int
	scalar string
	seq    []string
}

func flagValue() Value {
	return Value{kind: Flag}
}

func counterValue(n int) Value {
	return Value{kind: Counter, count: n}
}

func scalarValue(s string) Value {
	return Value{kind: Scalar, scalar: s}
}

func sequenceValue(vals ...string) Value {
	return Value{kind: Sequence, seq: slices.Clone(vals)}
}

// appendValue adds val to a Sequence, creating it if needed.
func (v Value) appendValue(val string) Value {
	if v.kind != Sequence {
		return sequenceValue(val)
	}
	return Value{kind: Sequence, seq: append(slices.Clip(v.seq), val)}
}

// fold adds val to an unknown option slot: the first value is a Scalar, the second promotes it to a Sequence.
func (v Value) fold(val string) Value {
	switch v.kind {
	case Scalar:
		return sequenceValue(v.scalar, val)
	case Sequence:
		return v.appendValue(val)
	default:
		return scalarValue(val)
	}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == Absent
}

// Bool is true for any Value other than [Absent].
func (v Value) Bool() bool {
	return v.kind != Absent
}

// Count returns the number of occurrences for a [Counter], the number of values for a [Sequence], and 1 for a [Flag] or [Scalar].
func (v Value) Count() int {
	switch v.kind {
	case Flag, Scalar:
		return 1
	case Counter:
		return v.count
	case Sequence:
		return len(v.seq)
	default:
		return 0
	}
}

// String renders the Value as text. Sequences are joined with commas.
func (v Value) String() string {
	switch v.kind {
	case Flag:
		return "true"
	case Counter:
		return strconv.Itoa(v.count)
	case Scalar:
		return v.scalar
	case Sequence:
		return strings.Join(v.seq, ",")
	default:
		return ""
	}
}

// Strings returns a copy of the values in a [Sequence], or a single element slice for a [Scalar].
// Nil is returned for other kinds.
func (v Value) Strings() []string {
	switch v.kind {
	case Scalar:
		return []string{v.scalar}
	case Sequence:
		return slices.Clone(v.seq)
	default:
		return nil
	}
}

// Equal reports whether both values have the same kind and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Counter:
		return v.count == other.count
	case Scalar:
		return v.scalar == other.scalar
	case Sequence:
		return slices.Equal(v.seq, other.seq)
	default:
		return true
	}
}
