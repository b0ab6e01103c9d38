package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/yokitheyo/cut/cut"
)

type options struct {
	bytes         string
	chars         string
	fields        string
	delim         string
	onlyDelimited bool
	workers       int

	color   string
	config  string
	verbose bool

	report *reporter
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "cut [-b LIST | -c LIST | -f LIST] [FILE...]",
		Short: "Print selected parts of lines from each FILE to standard output",
		Long: `cut prints the selected fields, bytes or characters of every input line.

LIST is a comma-separated set of 1-based positions or ranges, e.g. 1,7,3-5.
Ranges are applied in the order given. With no FILE, or when FILE is -,
standard input is read.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "Color diagnostics: auto, always, never")
	cmd.PersistentFlags().StringVar(&opts.config, "config", "", "YAML file with default settings")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	cmd.Flags().StringVarP(&opts.bytes, "bytes", "b", "", "Selected bytes")
	cmd.Flags().StringVarP(&opts.chars, "chars", "c", "", "Selected characters")
	cmd.Flags().StringVarP(&opts.fields, "fields", "f", "", "Selected fields")
	cmd.Flags().StringVarP(&opts.delim, "delim", "d", "\t", "Field delimiter")
	cmd.Flags().BoolVarP(&opts.onlyDelimited, "only-delimited", "s", false, "Do not print lines without the delimiter")
	cmd.Flags().IntVar(&opts.workers, "workers", 1, "Number of files processed concurrently")

	cmd.MarkFlagsMutuallyExclusive("bytes", "chars", "fields")
	cmd.MarkFlagsOneRequired("bytes", "chars", "fields")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup applies the config file, then configures logging and colors.
func (o *options) setup(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()

	if o.config != "" {
		cfg, err := loadConfig(o.config)
		if err != nil {
			return err
		}
		if err := cfg.apply(cmd.Flags()); err != nil {
			return err
		}
	}

	enabled, err := colorEnabled(o.color, stderr)
	if err != nil {
		return err
	}
	o.report = newReporter(stderr, enabled)

	if o.verbose {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	return nil
}

// request turns the parsed flags into an extraction request.
func (o *options) request(args []string) (cut.Request, error) {
	req := cut.Request{Files: args, OnlyDelimited: o.onlyDelimited}

	switch {
	case o.fields != "":
		req.Kind, req.List = cut.KindFields, o.fields
	case o.bytes != "":
		req.Kind, req.List = cut.KindBytes, o.bytes
	case o.chars != "":
		req.Kind, req.List = cut.KindChars, o.chars
	default:
		return req, &cut.ParseError{Kind: cut.EmptySelection}
	}

	if req.Kind == cut.KindFields {
		if len(o.delim) != 1 {
			return req, fmt.Errorf("--delim \"%s\" must be a single byte", o.delim)
		}
		req.Delimiter = o.delim[0]
	}

	return req, nil
}

func runCut(cmd *cobra.Command, opts *options, args []string) error {
	req, err := opts.request(args)
	if err != nil {
		return err
	}

	extractor, err := req.Extractor()
	if err != nil {
		return err
	}

	runner := &cut.Runner{
		Extractor:     extractor,
		Stdin:         cmd.InOrStdin(),
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
		OnlyDelimited: req.OnlyDelimited,
		Workers:       opts.workers,
		OnError:       opts.report.fileError,
		Logger:        log.Default(),
	}

	return runner.Run(cmd.Context(), req.Files)
}
