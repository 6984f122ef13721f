package arghs

import (
	"fmt"
	"strings"
)

// Kind is the type tag of a registered option.
// It decides how repeated occurrences and values are handled while parsing.
type Kind int

const (
	KindBool   Kind = iota + 1 // KindBool is a switch that is either present or not.
	KindCount                  // KindCount counts how many times a switch is given.
	KindString                 // KindString takes a single value.
	KindArray                  // KindArray collects every value given, in order.
)

const defaultParamName = "x"

var kindNames = map[Kind]string{
	KindBool:   "bool",
	KindCount:  "count",
	KindString: "string",
	KindArray:  "array",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps one of "bool", "count", "string", or "array" to its [Kind].
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown option type '%s'", ErrConfig, s)
}

// UnmarshalText allows a [Kind] to be decoded from definition files.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalText writes the [Kind] in the same form [ParseKind] accepts.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: invalid option type %d", ErrConfig, int(k))
	}
	return []byte(k.String()), nil
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// TakesValue reports whether options of this [Kind] consume a value.
func (k Kind) TakesValue() bool {
	return k == KindString || k == KindArray
}

// OptionSpec describes a registered option.
// ParamName is only set for kinds that take a value, and is used for help output.
type OptionSpec struct {
	Name      string
	Kind      Kind
	ParamName string
}

// Strictness toggles, per category, whether a parse violation fails the parse or is recorded as a diagnostic.
// The zero value is fully permissive.
type Strictness struct {
	RejectUnknown          bool `toml:"unknown" yaml:"unknown"` // Unknown long or short options fail the parse.
	RejectInvalid          bool `toml:"invalid" yaml:"invalid"` // Repeated switches, repeated single values, and missing values fail the parse.
	RejectExcessPositional bool `toml:"unnamed" yaml:"unnamed"` // Positional arguments left over after named binding fail the parse.
	RequireAllNamed        bool `toml:"named" yaml:"named"`     // Fewer positional arguments than named arguments fail the parse.
}

// AllStrict returns a [Strictness] with every category enabled.
func AllStrict() Strictness {
	return Strictness{
		RejectUnknown:          true,
		RejectInvalid:          true,
		RejectExcessPositional: true,
		RequireAllNamed:        true,
	}
}
