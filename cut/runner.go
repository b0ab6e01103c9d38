package cut

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
)

// StdinName is the file name that stands for standard input.
const StdinName = "-"

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024 * 1024

// Runner feeds the lines of a set of files through an Extractor and
// writes one output line per input line.
type Runner struct {
	Extractor *Extractor
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer

	// OnlyDelimited drops lines without the delimiter in fields mode.
	OnlyDelimited bool
	// Workers > 1 processes files concurrently. Output keeps file order.
	Workers int
	// OnError is called for files that cannot be opened. Those files are
	// skipped and the run continues.
	OnError func(name string, err error)
	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// Run processes files in order. An empty list means standard input.
func (r *Runner) Run(ctx context.Context, files []string) error {
	if len(files) == 0 {
		files = []string{StdinName}
	}

	r.logf("cut: %s on %d file(s), list %s", r.Extractor.Mode(), len(files), r.Extractor.Positions())

	if r.Workers > 1 && len(files) > 1 {
		return r.runParallel(ctx, files)
	}

	out := bufio.NewWriter(r.stdout())
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		in, closeFn, err := r.open(name)
		if err != nil {
			r.reportError(name, err)
			continue
		}

		err = r.process(ctx, in, out)
		closeFn()
		if err != nil {
			out.Flush()
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return out.Flush()
}

func (r *Runner) runParallel(ctx context.Context, files []string) error {
	results := make([]bytes.Buffer, len(files))
	openErrs := make([]error, len(files))

	// stdin is read once; later "-" entries see it drained
	drained := make([]bool, len(files))
	stdinSeen := false
	for i, name := range files {
		if name == StdinName {
			drained[i] = stdinSeen
			stdinSeen = true
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	for i, name := range files {
		if drained[i] {
			continue
		}
		i, name := i, name
		g.Go(func() error {
			in, closeFn, err := r.open(name)
			if err != nil {
				openErrs[i] = err
				return nil
			}
			defer closeFn()

			if err := r.process(ctx, in, &results[i]); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	out := r.stdout()
	for i, name := range files {
		if openErrs[i] != nil {
			r.reportError(name, openErrs[i])
			continue
		}
		if _, err := results[i].WriteTo(out); err != nil {
			return err
		}
	}

	return nil
}

// process writes the extraction of every line of in to w.
func (r *Runner) process(ctx context.Context, in io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if r.OnlyDelimited && !r.Extractor.Delimited(line) {
			continue
		}

		if _, err := io.WriteString(w, r.Extractor.Extract(line)+"\n"); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (r *Runner) open(name string) (io.Reader, func(), error) {
	if name == StdinName {
		if r.Stdin != nil {
			return r.Stdin, func() {}, nil
		}
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

func (r *Runner) reportError(name string, err error) {
	if r.OnError != nil {
		r.OnError(name, err)
		return
	}

	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	fmt.Fprintf(stderr, "%s: %v\n", name, err)
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}
