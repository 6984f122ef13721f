package arghs

import (
	"github.com/saylorsolutions/arghs/casing"
	"log/slog"
	"maps"
	"slices"
)

// Config is an immutable parser configuration produced by [Builder.Build].
// A Config holds no parse state, so it may be shared and used for concurrent parses.
type Config struct {
	options  map[string]OptionSpec
	keys     map[string]string
	aliases  map[rune]string
	named    []string
	naming   casing.Mode
	usage    string
	help     bool
	helpBody string
	desc     map[string]string
	strict   Strictness
	logger   *slog.Logger
	term     *Terminator
}

// Option returns the registered [OptionSpec] for name.
func (c *Config) Option(name string) (OptionSpec, bool) {
	spec, ok := c.options[name]
	return spec, ok
}

// Options returns every registered [OptionSpec], sorted by name.
func (c *Config) Options() []OptionSpec {
	specs := make([]OptionSpec, 0, len(c.options))
	for _, name := range slices.Sorted(maps.Keys(c.options)) {
		specs = append(specs, c.options[name])
	}
	return specs
}

// Alias resolves a short form to the long option name it refers to.
func (c *Config) Alias(short rune) (string, bool) {
	long, ok := c.aliases[short]
	return long, ok
}

// Key returns the [Result] key used for an option or named argument name.
func (c *Config) Key(name string) string {
	if key, ok := c.keys[name]; ok {
		return key
	}
	return c.naming.Apply(name)
}

// Named returns the declared named arguments in binding order.
func (c *Config) Named() []string {
	return slices.Clone(c.named)
}

func (c *Config) Strictness() Strictness {
	return c.strict
}

func (c *Config) Naming() casing.Mode {
	return c.naming
}

// Usage returns the usage line with the program name already substituted.
func (c *Config) Usage() string {
	return c.usage
}

func (c *Config) HelpEnabled() bool {
	return c.help
}
