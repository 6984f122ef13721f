/*
Package arghs parses command line tokens against a declared set of options, aliases, and named arguments.

Options have one of four kinds:
  - [KindBool] switches like --post or -p.
  - [KindCount] switches like -vvv, counted per occurrence.
  - [KindString] options taking one value, as --num=5 or --num 5.
  - [KindArray] options collecting every value, as --id=1,2 --id 3.

A [Config] is built once with a [Builder], from a TOML or YAML [Definition], or from an existing [pflag.FlagSet], and may then be used for any number of parses.

# Results

Parsing produces a [Result].
Option values and named arguments are addressed by key, where hyphenated names are rewritten to camelCase by default (see [Builder.Naming]).
Leftover positional tokens, unknown options, soft diagnostics, and tokens after a bare "--" are kept in separate channels.

# Strictness

Each category of [Strictness] decides whether a violation fails the parse, or gets recorded in [Result.Diagnostics] so scanning can continue.
[Config.Parse] only ever returns errors. Use [Config.MustParse] or [Config.ExitWith] to print usage information and exit the way a CLI should.

[pflag.FlagSet]: https://pkg.go.dev/github.com/spf13/pflag#FlagSet
*/
package arghs
