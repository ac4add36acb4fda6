package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\033[31m"
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

// Color modes accepted by NewPrinter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes diagnostics one per line.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer for w. In auto mode color is enabled only when
// w is a terminal.
func NewPrinter(w io.Writer, mode string) *Printer {
	p := &Printer{w: w}
	switch mode {
	case ColorAlways:
		p.color = true
	case ColorNever:
		p.color = false
	default:
		p.color = IsTerminal(w)
	}
	return p
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) Print(err *DiagnosticError) {
	prefix := ""
	if err.File != "" {
		prefix = err.File + ": "
	}
	if p.color {
		fmt.Fprintf(p.w, "%s%s%s%s%s\n", ansiBold, prefix, ansiRed, err.Error(), ansiReset)
		return
	}
	fmt.Fprintf(p.w, "%s%s\n", prefix, err.Error())
}

func (p *Printer) PrintAll(errs []*DiagnosticError) {
	for _, err := range errs {
		p.Print(err)
	}
}
