package arghs

import (
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
)

// Printer writes user-visible output, to STDERR by default.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

func (p *Printer) fd() (int, bool) {
	f, ok := p.out.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// IsTerminal reports whether output goes to a terminal.
func (p *Printer) IsTerminal() bool {
	_, ok := p.fd()
	return ok
}

// Width returns the terminal width in columns, or 0 if output doesn't go to a terminal.
func (p *Printer) Width() int {
	fd, ok := p.fd()
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
