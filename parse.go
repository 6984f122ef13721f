package arghs

import (
	"github.com/saylorsolutions/arghs/casing"
	"github.com/saylorsolutions/arghs/structures/queue"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// Parse scans tokens from left to right and returns the [Result].
//
// Tokens starting with "--" are long options, and a bare "--" moves every remaining token to the overflow channel.
// Tokens starting with a single "-" are short aliases, and may be bundled, so "-abc" is handled like "-a -bc".
// Any other token is positional.
//
// Strict violations stop the parse and return a [*UsageError], as does a request for help.
// Permissive violations are recorded in [Result.Diagnostics] and scanning continues.
// Parse never exits the process, see [Config.MustParse] for that.
func (c *Config) Parse(tokens []string) (*Result, error) {
	p := &parser{
		cfg:    c,
		tokens: queue.NewDeque(tokens...),
		res:    newResult(),
	}
	if err := p.scan(); err != nil {
		return nil, err
	}
	p.rekey()
	if err := p.bindNamed(); err != nil {
		return nil, err
	}
	return p.res, nil
}

// ParseArgs parses the process arguments, excluding the program name.
func (c *Config) ParseArgs() (*Result, error) {
	if len(os.Args) < 2 {
		return c.Parse(nil)
	}
	return c.Parse(os.Args[1:])
}

// ParseString splits line on whitespace and parses the resulting tokens.
func (c *Config) ParseString(line string) (*Result, error) {
	return c.Parse(strings.Fields(line))
}

// MustParse is like [Config.Parse], but hands any error to the configured [Terminator].
// Nil is only returned if the Terminator's exit function returns.
func (c *Config) MustParse(tokens []string) *Result {
	res, err := c.Parse(tokens)
	if err != nil {
		c.ExitWith(err)
		return nil
	}
	return res
}

// MustParseArgs is like [Config.ParseArgs], but hands any error to the configured [Terminator].
func (c *Config) MustParseArgs() *Result {
	res, err := c.ParseArgs()
	if err != nil {
		c.ExitWith(err)
		return nil
	}
	return res
}

// MustParseString is like [Config.ParseString], but hands any error to the configured [Terminator].
func (c *Config) MustParseString(line string) *Result {
	res, err := c.ParseString(line)
	if err != nil {
		c.ExitWith(err)
		return nil
	}
	return res
}

// ExitWith renders err with usage information using the configured [Terminator], and ends the process.
// This can also be used for validation failures found by the caller after parsing.
func (c *Config) ExitWith(err error) {
	c.term.Terminate(c, err)
}

type parser struct {
	cfg    *Config
	tokens *queue.Deque[string]
	res    *Result
}

func (p *parser) scan() error {
	for tok := range p.tokens.All() {
		var name string
		switch {
		case strings.HasPrefix(tok, "--"):
			name = tok[2:]
			if len(name) == 0 {
				p.res.overflow = p.tokens.Drain()
				return nil
			}
		case len(tok) > 1 && tok[0] == '-':
			long, ok, err := p.short(tok[1:])
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			name = long
		default:
			p.res.positional = append(p.res.positional, tok)
			continue
		}
		if err := p.option(name); err != nil {
			return err
		}
	}
	return nil
}

// short resolves the first switch in a short option token, and queues the rest of a bundle as a new token.
func (p *parser) short(switches string) (string, bool, error) {
	r, size := utf8.DecodeRuneInString(switches)
	if len(switches) > size {
		p.tokens.PushFront("-" + switches[size:])
	}
	if long, ok := p.cfg.aliases[r]; ok {
		return long, true, nil
	}
	raw := switches[:size]
	err := newUsageError(ErrUnknownOption, "unknown short option: -%s", raw)
	if p.cfg.strict.RejectUnknown {
		return "", false, err
	}
	p.record(raw, err)
	return "", false, nil
}

func (p *parser) option(token string) error {
	name, inline, hasInline := strings.Cut(token, "=")
	spec, known := p.cfg.options[name]
	if known {
		switch spec.Kind {
		case KindBool:
			return p.flag(name, hasInline)
		case KindCount:
			return p.count(name, hasInline)
		}
	}

	var values []string
	if hasInline {
		values = strings.Split(inline, ",")
	} else if next, ok := p.tokens.PeekFront(); ok && !strings.HasPrefix(next, "-") {
		_, _ = p.tokens.PopFront()
		values = []string{next}
	}
	if !known && p.cfg.strict.RejectUnknown {
		return newUsageError(ErrUnknownOption, "unknown option: --%s", name)
	}
	if values == nil {
		return p.check(p.cfg.strict.RejectInvalid, name, newUsageError(ErrMissingValue, "missing value for option: --%s", name))
	}

	switch {
	case !known:
		p.cfg.logger.Debug("Collected unknown option", "option", name, "values", values)
		slot := p.res.unknown[name]
		for _, val := range values {
			slot = slot.fold(val)
		}
		p.res.unknown[name] = slot
	case spec.Kind == KindArray:
		slot := p.res.values[name]
		for _, val := range values {
			slot = slot.appendValue(val)
		}
		p.res.values[name] = slot
	default:
		if _, exists := p.res.values[name]; exists || len(values) > 1 {
			err := p.check(p.cfg.strict.RejectInvalid, name, newUsageError(ErrInvalidUsage, "multiple values for single option: --%s", name))
			if err != nil {
				return err
			}
		}
		p.res.values[name] = scalarValue(values[len(values)-1])
	}
	return nil
}

func (p *parser) flag(name string, hasInline bool) error {
	if hasInline {
		err := p.check(p.cfg.strict.RejectInvalid, name, newUsageError(ErrInvalidUsage, "boolean option does not take a value: --%s", name))
		if err != nil {
			return err
		}
	}
	if _, exists := p.res.values[name]; exists {
		err := p.check(p.cfg.strict.RejectInvalid, name, newUsageError(ErrInvalidUsage, "multiple invocation of boolean option: --%s", name))
		if err != nil {
			return err
		}
	}
	p.res.values[name] = flagValue()
	return nil
}

func (p *parser) count(name string, hasInline bool) error {
	if hasInline {
		err := p.check(p.cfg.strict.RejectInvalid, name, newUsageError(ErrInvalidUsage, "count option does not take a value: --%s", name))
		if err != nil {
			return err
		}
	}
	p.res.values[name] = counterValue(p.res.values[name].count + 1)
	return nil
}

// check returns err if strict is set, otherwise it records err as a diagnostic for key.
func (p *parser) check(strict bool, key string, err *UsageError) error {
	if strict {
		return err
	}
	p.record(key, err)
	return nil
}

func (p *parser) record(key string, err *UsageError) {
	p.cfg.logger.Debug("Recorded parse diagnostic", "option", key, "error", err.Message())
	p.res.diagnostics[key] = err.Message()
}

// rekey moves option values and unknown options to their transformed keys.
func (p *parser) rekey() {
	if p.cfg.naming == casing.None {
		return
	}
	values := make(map[string]Value, len(p.res.values))
	for name, val := range p.res.values {
		values[p.cfg.Key(name)] = val
	}
	p.res.values = values

	unknown := make(map[string]Value, len(p.res.unknown))
	for _, name := range slices.Sorted(maps.Keys(p.res.unknown)) {
		key := p.cfg.naming.Apply(name)
		val := p.res.unknown[name]
		if existing, ok := unknown[key]; ok {
			for _, s := range val.Strings() {
				existing = existing.fold(s)
			}
			val = existing
		}
		unknown[key] = val
	}
	p.res.unknown = unknown
}

// bindNamed shifts positional tokens into named arguments, then applies the help and argument count policies.
func (p *parser) bindNamed() error {
	named := p.cfg.named
	bound := 0
	for _, name := range named {
		key := p.cfg.Key(name)
		if len(p.res.positional) == 0 {
			p.res.values[key] = Value{}
			continue
		}
		p.res.values[key] = scalarValue(p.res.positional[0])
		p.res.positional = p.res.positional[1:]
		bound++
	}

	if p.cfg.help && p.res.values[p.cfg.Key(HelpOption)].Bool() {
		return &UsageError{cause: ErrHelp, code: ExitSuccess}
	}
	if remaining := len(p.res.positional); remaining > 0 && p.cfg.strict.RejectExcessPositional {
		return newUsageError(ErrTooManyArgs, "received too many arguments: expected %d, got %d", len(named), len(named)+remaining)
	}
	if bound < len(named) && p.cfg.strict.RequireAllNamed {
		return newUsageError(ErrTooFewArgs, "received too few arguments: expected %d, got %d", len(named), bound)
	}
	return nil
}
