package arghs

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/saylorsolutions/arghs/casing"
	"gopkg.in/yaml.v3"
	"io"
	"slices"
	"strings"
)

var definitionSections = []string{"options", "named", "aliases", "naming", "usage", "help", "strict"}

// Definition is a declarative parser configuration, as read by [LoadTOML] and [LoadYAML].
//
// A TOML definition looks like this:
//
//	named = ["path", "dest"]
//	usage = "Usage: $1 [OPTIONS...] <PATH> <DEST>"
//
//	[options]
//	id = ["array", "ID"]
//	post = "bool"
//
//	[aliases]
//	i = "id"
//
//	[help]
//	id = "use item id(s) for request"
//
//	[strict]
//	invalid = true
type Definition struct {
	Options map[string]OptionDef `toml:"options" yaml:"options"`
	Named   NameList             `toml:"named" yaml:"named"`
	Aliases map[string]string    `toml:"aliases" yaml:"aliases"`
	Naming  *casing.Mode         `toml:"naming" yaml:"naming"`
	Usage   *string              `toml:"usage" yaml:"usage"`
	Help    *HelpDef             `toml:"help" yaml:"help"`
	Strict  *StrictDef           `toml:"strict" yaml:"strict"`
}

// LoadTOML reads a TOML [Definition] and returns a [Builder] populated from it.
// Unrecognized top-level sections are an error.
func LoadTOML(r io.Reader) (*Builder, error) {
	var def Definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	var unknown []string
	for _, key := range md.Undecoded() {
		if len(key) > 0 && !slices.Contains(definitionSections, key[0]) && !slices.Contains(unknown, key[0]) {
			unknown = append(unknown, key[0])
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unrecognized section(s) %s", ErrConfig, strings.Join(unknown, ", "))
	}
	return def.Builder(), nil
}

// LoadYAML reads a YAML [Definition] and returns a [Builder] populated from it.
// Unrecognized top-level sections are an error.
func LoadYAML(r io.Reader) (*Builder, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return def.Builder(), nil
}

// Builder creates a [Builder] from the [Definition].
func (d *Definition) Builder() *Builder {
	b := NewBuilder().OptionDefs(d.Options)
	b.Named(d.Named...)
	b.Aliases(d.Aliases)
	if d.Naming != nil {
		b.Naming(*d.Naming)
	}
	if d.Usage != nil {
		b.Usage(*d.Usage)
	}
	if d.Help != nil && d.Help.Enabled {
		switch {
		case len(d.Help.Body) > 0:
			b.HelpText(d.Help.Body)
		case len(d.Help.Descriptions) > 0:
			b.HelpDescriptions(d.Help.Descriptions)
		default:
			b.Help()
		}
	}
	if d.Strict != nil {
		b.Strict(d.Strict.Strictness)
	}
	return b
}

// OptionDef is an option entry in a [Definition].
// It's written either as a type name like "string", or as a pair of type name and parameter name like ["string", "NUM"].
type OptionDef struct {
	Kind      Kind
	ParamName string
}

func (d *OptionDef) set(parts []string) error {
	if len(parts) == 0 || len(parts) > 2 {
		return fmt.Errorf("%w: option must be a type name or a [type, param] pair", ErrConfig)
	}
	kind, err := ParseKind(parts[0])
	if err != nil {
		return err
	}
	d.Kind = kind
	if len(parts) == 2 {
		d.ParamName = parts[1]
	}
	return nil
}

func (d *OptionDef) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		return d.set([]string{v})
	case []any:
		parts, err := tomlStrings(v)
		if err != nil {
			return err
		}
		return d.set(parts)
	}
	return fmt.Errorf("%w: option must be a type name or a [type, param] pair", ErrConfig)
}

func (d *OptionDef) UnmarshalYAML(node *yaml.Node) error {
	var parts []string
	switch node.Kind {
	case yaml.ScalarNode:
		parts = make([]string, 1)
		if err := node.Decode(&parts[0]); err != nil {
			return err
		}
	case yaml.SequenceNode:
		if err := node.Decode(&parts); err != nil {
			return err
		}
	}
	return d.set(parts)
}

// NameList is the list of named arguments in a [Definition].
// A single name may be given as a plain string.
type NameList []string

func (l *NameList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*l = NameList{v}
		return nil
	case []any:
		names, err := tomlStrings(v)
		if err != nil {
			return err
		}
		*l = names
		return nil
	}
	return fmt.Errorf("%w: 'named' must be an array or string", ErrConfig)
}

func (l *NameList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*l = NameList{name}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*l = names
		return nil
	}
	return fmt.Errorf("%w: 'named' must be an array or string", ErrConfig)
}

// HelpDef is the help section of a [Definition].
// It may be true to generate help text, a table of option descriptions, or a literal help body.
type HelpDef struct {
	Enabled      bool
	Descriptions map[string]string
	Body         string
}

func (h *HelpDef) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case bool:
		h.Enabled = v
		return nil
	case string:
		h.Enabled = true
		h.Body = v
		return nil
	case map[string]any:
		h.Enabled = true
		h.Descriptions = make(map[string]string, len(v))
		for name, desc := range v {
			s, ok := desc.(string)
			if !ok {
				return fmt.Errorf("%w: help description for '%s' must be a string", ErrConfig, name)
			}
			h.Descriptions[name] = s
		}
		return nil
	}
	return fmt.Errorf("%w: 'help' must be a string, a table, or a boolean", ErrConfig)
}

func (h *HelpDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!bool" {
			return node.Decode(&h.Enabled)
		}
		h.Enabled = true
		return node.Decode(&h.Body)
	case yaml.MappingNode:
		h.Enabled = true
		return node.Decode(&h.Descriptions)
	}
	return fmt.Errorf("%w: 'help' must be a string, a mapping, or a boolean", ErrConfig)
}

// StrictDef is the strict section of a [Definition].
// It may be a boolean to enable or disable every category, or a table of the individual categories.
type StrictDef struct {
	Strictness
}

func (s *StrictDef) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case bool:
		if v {
			s.Strictness = AllStrict()
		}
		return nil
	case map[string]any:
		for key, val := range v {
			target, err := s.category(key)
			if err != nil {
				return err
			}
			b, ok := val.(bool)
			if !ok {
				return fmt.Errorf("%w: strict category '%s' must be a boolean", ErrConfig, key)
			}
			*target = b
		}
		return nil
	}
	return fmt.Errorf("%w: 'strict' must be a table or a boolean", ErrConfig)
}

func (s *StrictDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var all bool
		if err := node.Decode(&all); err != nil {
			return err
		}
		if all {
			s.Strictness = AllStrict()
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i].Value, node.Content[i+1]
			target, err := s.category(key)
			if err != nil {
				return err
			}
			if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!bool" {
				return fmt.Errorf("%w: strict category '%s' must be a boolean", ErrConfig, key)
			}
			if err := val.Decode(target); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: 'strict' must be a mapping or a boolean", ErrConfig)
}

// category returns the field set by a named strict category.
func (s *StrictDef) category(key string) (*bool, error) {
	switch key {
	case "unknown":
		return &s.RejectUnknown, nil
	case "invalid":
		return &s.RejectInvalid, nil
	case "unnamed":
		return &s.RejectExcessPositional, nil
	case "named":
		return &s.RequireAllNamed, nil
	}
	return nil, fmt.Errorf("%w: unknown strict category '%s'", ErrConfig, key)
}

func tomlStrings(vals []any) ([]string, error) {
	strs := make([]string, len(vals))
	for i, val := range vals {
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected a string, got %v", ErrConfig, val)
		}
		strs[i] = s
	}
	return strs, nil
}
