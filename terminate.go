package arghs

import (
	"errors"
	"github.com/fatih/color"
	"os"
	"strings"
)

const helpHint = "Specify --help for available options"

// Terminator renders usage information and ends the process.
// It's only used by the MustParse methods and [Config.ExitWith], so [Config.Parse] stays free of side effects.
type Terminator struct {
	printer *Printer
	exit    func(code int)
}

// NewTerminator creates a [Terminator] that prints to STDERR and calls [os.Exit].
func NewTerminator() *Terminator {
	return &Terminator{
		printer: NewPrinter(),
		exit:    os.Exit,
	}
}

// Printer returns the [Printer] used for output, which may be redirected.
func (t *Terminator) Printer() *Printer {
	return t.printer
}

// OnExit replaces the function called with the exit code, which is [os.Exit] by default.
func (t *Terminator) OnExit(exit func(code int)) *Terminator {
	if exit != nil {
		t.exit = exit
	}
	return t
}

// Terminate prints usage for cfg along with a message derived from err, then exits.
//
// If err matches [ErrHelp], the help text is printed and the exit code is 0.
// Otherwise the exit code is taken from an error with an ExitCode method, or defaults to 1.
func (t *Terminator) Terminate(cfg *Config, err error) {
	text, code := t.render(cfg, err)
	t.printer.Print(text)
	t.exit(code)
}

func (t *Terminator) render(cfg *Config, err error) (string, int) {
	var buf strings.Builder
	section := func(text string) {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			buf.WriteString("\n")
		}
	}
	if usage := cfg.Usage(); len(usage) > 0 {
		section(usage)
	}
	if errors.Is(err, ErrHelp) {
		section(cfg.HelpText(t.printer.Width()))
		return buf.String(), ExitSuccess
	}

	var (
		code  = ExitFailure
		msg   string
		uerr  *UsageError
		coder interface{ ExitCode() int }
	)
	if errors.As(err, &coder) {
		code = coder.ExitCode()
	}
	if errors.As(err, &uerr) {
		msg = uerr.Message()
	} else if err != nil {
		msg = err.Error()
	}
	if cfg.HelpEnabled() {
		section(helpHint)
	}
	if len(msg) > 0 {
		section(t.colorize(msg))
	}
	return buf.String(), code
}

// colorize marks msg red when printing to a terminal.
func (t *Terminator) colorize(msg string) string {
	errColor := color.New(color.FgRed)
	if t.printer.IsTerminal() {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}
	return errColor.Sprint(msg)
}
