package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// reporter writes diagnostics to stderr, colored when enabled.
type reporter struct {
	w     io.Writer
	fatal *color.Color
	file  *color.Color
}

func newReporter(w io.Writer, enabled bool) *reporter {
	r := &reporter{
		w:     w,
		fatal: color.New(color.FgRed, color.Bold),
		file:  color.New(color.FgYellow),
	}

	if enabled {
		r.fatal.EnableColor()
		r.file.EnableColor()
	} else {
		r.fatal.DisableColor()
		r.file.DisableColor()
	}

	return r
}

// colorEnabled resolves --color. "auto" colors only a terminal and
// honors NO_COLOR.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
}

func (r *reporter) fileError(name string, err error) {
	fmt.Fprintf(r.w, "%s: %v\n", r.file.Sprint(name), err)
}

func (r *reporter) error(err error) {
	r.fatal.Fprintf(r.w, "cut: %v\n", err)
}
