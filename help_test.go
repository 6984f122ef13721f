package arghs

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"strings"
	"sync"
	"testing"
)

func testTerminator(buf *bytes.Buffer, code *int) *Terminator {
	term := NewTerminator().OnExit(func(c int) {
		*code = c
	})
	term.Printer().Redirect(buf)
	return term
}

func TestConfig_HelpText(t *testing.T) {
	cfg := buildConfig(t, demoBuilder().
		Option("id", KindArray, "ID").
		HelpDescriptions(map[string]string{
			"id":  "use item id(s) for request",
			"num": "number of items to retrieve",
		}))

	expected := `Options:
  -h, --help     show this help message and exit
  -i, --id <ID>  use item id(s) for request
  -n, --num <x>  number of items to retrieve
  -p, --post     [bool]
  -v, --verbose  [count]
`
	assert.Equal(t, expected, cfg.HelpText(0))
}

func TestConfig_HelpText_NoAlias(t *testing.T) {
	cfg := buildConfig(t, NewBuilder().
		Option("dry-run", KindBool).
		Option("verbose", KindCount).
		Alias("v", "verbose"))

	expected := `Options:
      --dry-run  [bool]
  -v, --verbose  [count]
`
	assert.Equal(t, expected, cfg.HelpText(0))
}

func TestConfig_HelpText_Wrapped(t *testing.T) {
	cfg := buildConfig(t, NewBuilder().
		Option("name", KindString).
		HelpDescriptions(map[string]string{
			"name": "the quick brown fox jumps over the lazy dog",
			"help": "help",
		}))
	indent := strings.Repeat(" ", 18)
	expected := "Options:\n" +
		"  -h, --help      help\n" +
		"      --name <x>  the quick brown fox\n" +
		indent + "jumps over the lazy\n" +
		indent + "dog\n"
	assert.Equal(t, expected, cfg.HelpText(40))
	assert.NotContains(t, cfg.HelpText(0), indent+"dog", "Width 0 should disable wrapping")
}

func TestConfig_HelpText_Body(t *testing.T) {
	cfg := buildConfig(t, NewBuilder().HelpText("Just read the source"))
	assert.Equal(t, "Just read the source\n", cfg.HelpText(80))
}

func TestWrapWords(t *testing.T) {
	assert.Equal(t, []string{"too narrow to wrap"}, wrapWords("too narrow to wrap", 5))
	assert.Equal(t, []string{""}, wrapWords("", 40))
	assert.Equal(t, []string{"aaaaaaaaaaaaaaaaaaaaaaaaa", "b"}, wrapWords("aaaaaaaaaaaaaaaaaaaaaaaaa b", 20), "Long words are not broken")
}

func TestTerminator_Failure(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	cfg := buildConfig(t, demoBuilder().
		Help().
		Strict().
		Terminator(testTerminator(&buf, &code)))

	res := cfg.MustParse([]string{"--nope"})
	assert.Nil(t, res)
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, `Usage: demo [OPTIONS...]

Specify --help for available options

unknown option: --nope
`, buf.String())
}

func TestTerminator_RenderConcurrent(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	term := testTerminator(&buf, &code)
	cfg := buildConfig(t, demoBuilder().Terminator(term))
	err := newUsageError(ErrUnknownOption, "unknown option: --nope")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, exitCode := term.render(cfg, err)
			assert.Equal(t, ExitFailure, exitCode)
			assert.True(t, strings.HasSuffix(text, "unknown option: --nope\n"), "Messages aren't colored off a terminal")
		}()
	}
	wg.Wait()
}

func TestTerminator_Help(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	cfg := buildConfig(t, NewBuilder().
		Program("demo").
		Usage("Usage: $1 [OPTIONS...] <PATH>").
		Named("path").
		HelpText("Does things with PATH").
		Strict().
		Terminator(testTerminator(&buf, &code)))

	res := cfg.MustParseString("-h")
	assert.Nil(t, res)
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Usage: demo [OPTIONS...] <PATH>\n\nDoes things with PATH\n", buf.String())
}

func TestTerminator_NoHelp(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	cfg := buildConfig(t, demoBuilder().
		Usage("").
		Strict(Strictness{RequireAllNamed: true}).
		Terminator(testTerminator(&buf, &code)))

	assert.Nil(t, cfg.MustParse(nil))
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "received too few arguments: expected 2, got 0\n", buf.String())
}

type exitCodeError struct{}

func (exitCodeError) Error() string { return "service unavailable" }
func (exitCodeError) ExitCode() int { return 69 }

func TestConfig_ExitWith(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	cfg := buildConfig(t, demoBuilder().Terminator(testTerminator(&buf, &code)))

	cfg.ExitWith(errors.New("path must exist"))
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Usage: demo [OPTIONS...]\n\npath must exist\n", buf.String())

	buf.Reset()
	cfg.ExitWith(exitCodeError{})
	assert.Equal(t, 69, code)
	assert.Equal(t, "Usage: demo [OPTIONS...]\n\nservice unavailable\n", buf.String())

	buf.Reset()
	cfg.ExitWith(nil)
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Usage: demo [OPTIONS...]\n", buf.String())
}

func TestConfig_MustParse(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	cfg := buildConfig(t, demoBuilder().Terminator(testTerminator(&buf, &code)))
	res := cfg.MustParse([]string{"-p", "a"})
	assert.NotNil(t, res)
	assert.Equal(t, -1, code, "Exit should not be called on success")
	assert.Empty(t, buf.String())
}

func TestPrinter_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter()
	p.Redirect(&buf)
	assert.False(t, p.IsTerminal())
	assert.Equal(t, 0, p.Width())
	p.Printf("%s-%d", "a", 1)
	p.Println()
	assert.Equal(t, "a-1\n", buf.String())
}
