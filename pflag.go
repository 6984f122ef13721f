package arghs

import (
	flag "github.com/spf13/pflag"
	"strings"
)

// FromFlagSet creates a [Builder] with every flag defined in fs registered, see [Builder.FlagSet].
func FromFlagSet(fs *flag.FlagSet) *Builder {
	return NewBuilder().FlagSet(fs)
}

// FlagSet registers every flag defined in fs as an option.
//
// Bool flags become [KindBool], count flags become [KindCount], slice and array flags become [KindArray], and anything else becomes [KindString].
// Shorthands are registered as aliases, flag usage becomes the help description, and the usage name (see [flag.UnquoteUsage]) becomes the parameter name.
// Flag values in fs are left untouched.
func (b *Builder) FlagSet(fs *flag.FlagSet) *Builder {
	if fs == nil {
		b.errs.add("nil flag set")
		return b
	}
	desc := map[string]string{}
	fs.VisitAll(func(f *flag.Flag) {
		param, usage := flag.UnquoteUsage(f)
		b.Option(f.Name, flagKind(f), param)
		if len(f.Shorthand) > 0 {
			b.Alias(f.Shorthand, f.Name)
		}
		if len(usage) > 0 {
			desc[f.Name] = usage
		}
	})
	b.describe(desc)
	return b
}

func flagKind(f *flag.Flag) Kind {
	typ := f.Value.Type()
	switch {
	case typ == "bool":
		return KindBool
	case typ == "count":
		return KindCount
	case strings.HasSuffix(typ, "Slice"), strings.HasSuffix(typ, "Array"), typ == "stringToString":
		return KindArray
	default:
		return KindString
	}
}
