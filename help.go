package arghs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	helpIndent   = "  "
	minWrapWidth = 20
)

// HelpText renders the help body shown when help is requested.
//
// A body given with [Builder.HelpText] is returned as-is.
// Otherwise, options are listed alphabetically with their short alias and parameter name, followed by their description or their kind.
// Descriptions are wrapped to fit in width columns, and width 0 disables wrapping.
func (c *Config) HelpText(width int) string {
	if len(c.helpBody) > 0 {
		if !strings.HasSuffix(c.helpBody, "\n") {
			return c.helpBody + "\n"
		}
		return c.helpBody
	}

	shorts := map[string]rune{}
	for _, short := range slices.Sorted(maps.Keys(c.aliases)) {
		long := c.aliases[short]
		if _, ok := shorts[long]; !ok {
			shorts[long] = short
		}
	}

	var (
		specs   = c.Options()
		entries = make([]string, len(specs))
		maxLen  int
	)
	for i, spec := range specs {
		name := spec.Name
		if spec.Kind.TakesValue() {
			name += " <" + spec.ParamName + ">"
		}
		if short, ok := shorts[spec.Name]; ok {
			entries[i] = fmt.Sprintf("%s-%c, --%s", helpIndent, short, name)
		} else {
			entries[i] = helpIndent + "    --" + name
		}
		maxLen = max(maxLen, utf8.RuneCountInString(entries[i]))
	}

	var buf strings.Builder
	buf.WriteString("Options:\n")
	descIndent := strings.Repeat(" ", maxLen+len(helpIndent))
	for i, spec := range specs {
		desc, ok := c.desc[spec.Name]
		if !ok {
			desc = "[" + spec.Kind.String() + "]"
		}
		lines := wrapWords(desc, width-len(descIndent))
		buf.WriteString(entries[i])
		buf.WriteString(strings.Repeat(" ", maxLen-utf8.RuneCountInString(entries[i])))
		buf.WriteString(helpIndent)
		buf.WriteString(lines[0])
		buf.WriteString("\n")
		for _, line := range lines[1:] {
			buf.WriteString(descIndent)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

// wrapWords splits text into lines no longer than width, breaking on whitespace.
// Text is returned as a single line if width is too small to wrap sensibly.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if width < minWrapWidth || len(words) == 0 {
		return []string{text}
	}
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range words {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	return append(lines, line.String())
}
