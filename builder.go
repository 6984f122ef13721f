package arghs

import (
	"github.com/saylorsolutions/arghs/casing"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	DefaultUsage    = "Usage: $1 [OPTIONS...]" // DefaultUsage is the usage template used when [Builder.Usage] isn't called.
	HelpOption      = "help"
	HelpAlias       = 'h'
	helpDescription = "show this help message and exit"
)

// Builder collects option, alias, and policy declarations and produces an immutable [Config].
//
// Builder methods may be chained. Problems found along the way are collected and returned together from [Builder.Build].
// Aliases are validated in Build, so they may be declared before the option they refer to.
type Builder struct {
	options  map[string]OptionSpec
	aliases  map[rune]string
	named    []string
	naming   casing.Mode
	usage    string
	program  string
	help     bool
	helpBody string
	desc     map[string]string
	strict   Strictness
	logger   *slog.Logger
	term     *Terminator
	errs     ConfigError
}

// NewBuilder creates an empty [Builder].
// Compound names default to camelCase keys, and strictness defaults to fully permissive.
func NewBuilder() *Builder {
	var program string
	if len(os.Args) > 0 {
		program = filepath.Base(os.Args[0])
	}
	return &Builder{
		options: map[string]OptionSpec{},
		aliases: map[rune]string{},
		desc:    map[string]string{},
		naming:  casing.Camel,
		usage:   DefaultUsage,
		program: program,
	}
}

// Option registers an option with the given [Kind].
// The optional paramName is shown in help output for kinds that take a value, and defaults to "x".
// Registering the same name again with a different kind is an error.
func (b *Builder) Option(name string, kind Kind, paramName ...string) *Builder {
	if len(name) == 0 || strings.HasPrefix(name, "-") || strings.ContainsAny(name, "= \t") {
		b.errs.add("invalid option name '%s'", name)
		return b
	}
	if !kind.valid() {
		b.errs.add("unknown option type for %s: %s", name, kind)
		return b
	}
	if existing, ok := b.options[name]; ok && existing.Kind != kind {
		b.errs.add("option '%s' already registered as %s", name, existing.Kind)
		return b
	}
	spec := OptionSpec{Name: name, Kind: kind}
	if kind.TakesValue() {
		spec.ParamName = defaultParamName
		if len(paramName) > 0 && len(paramName[0]) > 0 {
			spec.ParamName = paramName[0]
		}
	}
	b.options[name] = spec
	return b
}

// OptionType is like [Builder.Option], but accepts the kind as text: one of "bool", "count", "string", or "array".
func (b *Builder) OptionType(name, kind string, paramName ...string) *Builder {
	k, err := ParseKind(kind)
	if err != nil {
		b.errs.add("unknown option type for %s: %s", name, kind)
		return b
	}
	return b.Option(name, k, paramName...)
}

// Options registers a batch of options.
func (b *Builder) Options(options map[string]Kind) *Builder {
	for _, name := range slices.Sorted(maps.Keys(options)) {
		b.Option(name, options[name])
	}
	return b
}

// OptionDefs registers a batch of options along with their parameter names.
func (b *Builder) OptionDefs(defs map[string]OptionDef) *Builder {
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		def := defs[name]
		b.Option(name, def.Kind, def.ParamName)
	}
	return b
}

// Named declares positional arguments that should be bound to names, in order.
func (b *Builder) Named(names ...string) *Builder {
	for _, name := range names {
		if len(name) == 0 {
			b.errs.add("named argument names must not be empty")
			continue
		}
		b.named = append(b.named, name)
	}
	return b
}

// Alias maps a single character short form to a long option name.
func (b *Builder) Alias(short, long string) *Builder {
	if utf8.RuneCountInString(short) != 1 {
		b.errs.add("alias '%s' must be a single letter", short)
		return b
	}
	r, _ := utf8.DecodeRuneInString(short)
	if r == '-' {
		b.errs.add("alias '-' is reserved")
		return b
	}
	if existing, ok := b.aliases[r]; ok && existing != long {
		b.errs.add("alias '%s' already refers to option '%s'", short, existing)
		return b
	}
	b.aliases[r] = long
	return b
}

// Aliases registers a batch of aliases, keyed by short form.
func (b *Builder) Aliases(aliases map[string]string) *Builder {
	for _, short := range slices.Sorted(maps.Keys(aliases)) {
		b.Alias(short, aliases[short])
	}
	return b
}

// Naming sets how compound option and named argument names are turned into [Result] keys.
func (b *Builder) Naming(mode casing.Mode) *Builder {
	switch mode {
	case casing.Camel, casing.Snake, casing.None:
		b.naming = mode
	default:
		b.errs.add("unknown naming mode %s", mode)
	}
	return b
}

// Usage sets the usage template shown by a [Terminator].
// Both "$0" and "$1" are replaced with the program name.
func (b *Builder) Usage(template string) *Builder {
	b.usage = template
	return b
}

// Program overrides the program name used in the usage template, which defaults to the base name of os.Args[0].
func (b *Builder) Program(name string) *Builder {
	b.program = name
	return b
}

// Help registers the "help" switch with the 'h' alias.
// When it's given, parsing returns an error matching [ErrHelp] and a [Terminator] prints generated help text.
func (b *Builder) Help() *Builder {
	b.Option(HelpOption, KindBool)
	b.Alias(string(HelpAlias), HelpOption)
	b.help = true
	if _, ok := b.desc[HelpOption]; !ok {
		b.desc[HelpOption] = helpDescription
	}
	return b
}

// HelpDescriptions enables help like [Builder.Help], using the given descriptions for generated help text.
// Options without a description show their kind instead.
func (b *Builder) HelpDescriptions(descriptions map[string]string) *Builder {
	b.describe(descriptions)
	return b.Help()
}

// HelpText enables help like [Builder.Help], but shows the given body instead of generated help text.
func (b *Builder) HelpText(body string) *Builder {
	b.helpBody = body
	return b.Help()
}

func (b *Builder) describe(descriptions map[string]string) {
	for name, desc := range descriptions {
		b.desc[name] = desc
	}
}

// Strict sets the [Strictness] policy.
// Calling Strict without arguments enables every category.
func (b *Builder) Strict(strict ...Strictness) *Builder {
	switch len(strict) {
	case 0:
		b.strict = AllStrict()
	case 1:
		b.strict = strict[0]
	default:
		b.errs.add("only one strictness policy may be given")
	}
	return b
}

// Logger sets the [slog.Logger] that receives debug output for soft violations.
// Nothing is logged by default.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Terminator sets the [Terminator] used by the MustParse methods of [Config].
func (b *Builder) Terminator(term *Terminator) *Builder {
	b.term = term
	return b
}

// Build validates the declarations and returns an immutable [Config].
// Every problem found is returned in a [ConfigError].
func (b *Builder) Build() (*Config, error) {
	errs := ConfigError{errs: slices.Clone(b.errs.errs)}
	for _, short := range slices.Sorted(maps.Keys(b.aliases)) {
		long := b.aliases[short]
		if _, ok := b.options[long]; !ok {
			errs.add("alias '%c' given for invalid option '%s'", short, long)
		}
	}

	keys := make(map[string]string, len(b.options))
	sources := map[string]string{}
	for _, name := range slices.Sorted(maps.Keys(b.options)) {
		key := b.naming.Apply(name)
		if other, ok := sources[key]; ok {
			errs.add("options '%s' and '%s' both use the key '%s'", other, name, key)
			continue
		}
		sources[key] = name
		keys[name] = key
	}
	for _, name := range b.named {
		key := b.naming.Apply(name)
		if other, ok := sources[key]; ok {
			errs.add("named argument '%s' collides with '%s' on the key '%s'", name, other, key)
			continue
		}
		sources[key] = name
	}
	if err := errs.result(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	term := b.term
	if term == nil {
		term = NewTerminator()
	}
	return &Config{
		options:  maps.Clone(b.options),
		keys:     keys,
		aliases:  maps.Clone(b.aliases),
		named:    slices.Clone(b.named),
		naming:   b.naming,
		usage:    strings.NewReplacer("$0", b.program, "$1", b.program).Replace(b.usage),
		help:     b.help,
		helpBody: b.helpBody,
		desc:     maps.Clone(b.desc),
		strict:   b.strict,
		logger:   logger,
		term:     term,
	}, nil
}

// MustBuild is like [Builder.Build], but panics if the configuration is invalid.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}
