package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/asciitable"
	"github.com/bjaus/asciitable/internal/logger"
)

type options struct {
	configFile  string
	inputFormat string
	width       int
	align       string
	border      string
	headers     []string
	headerRow   bool
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "asciitable [file]",
		Short:         "Print rows as a bordered text table",
		Long:          "Reads rows from a YAML, JSON, CSV, or TSV file (or stdin) and prints them as a bordered table that fits the terminal width.",
		Example:       "  asciitable data.csv --header-row\n  printf 'a,b\\n1,2\\n' | asciitable -f csv --border rounded",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			var level int8
			if opts.debug {
				level = -1
			}
			lgr := logger.WithValues(logger.Get(level), logger.CommandKey, cmd.Name())
			cmd.SetContext(logger.WithLogger(cmd.Context(), lgr))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	bindFlags(cmd.Flags(), opts)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML table config")
	fs.StringVarP(&opts.inputFormat, "input-format", "f", "", "input format: yaml|json|csv|tsv (default from file extension, else yaml)")
	fs.IntVarP(&opts.width, "width", "w", 0, "maximum table width (default: terminal width)")
	fs.StringVar(&opts.align, "align", "", "default alignment: left|center|right")
	fs.StringVar(&opts.border, "border", "", "border style: square|rounded|heavy|double|ascii")
	fs.StringSliceVar(&opts.headers, "header", nil, "comma-separated column headers")
	fs.BoolVar(&opts.headerRow, "header-row", false, "use the first input row as column headers")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	lgr := logger.FromContext(cmd.Context())

	cfg, err := resolveConfig(cmd.Flags(), opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	in, name := cmd.InOrStdin(), ""
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, args[0]
	}
	format := opts.inputFormat
	if format == "" {
		format = inferFormat(name)
	}
	t, err := readTable(in, format)
	if err != nil {
		return fmt.Errorf("reading %s input: %w", format, err)
	}

	header := t.header
	if opts.headerRow && len(t.rows) > 0 {
		header, t.rows = t.rows[0], t.rows[1:]
	}
	if len(opts.headers) > 0 {
		header = opts.headers
	}
	applyHeaders(&cfg, header)

	warnWideGlyphs(*lgr, t.rows)
	lgr.V(1).Info("rendering table",
		"rows", len(t.rows),
		"maxWidth", cfg.MaxWidth,
		"border", cfg.Border.String(),
		"defaultAlign", cfg.DefaultAlign.String(),
	)
	return asciitable.Fprint(cmd.OutOrStdout(), t.rows, cfg)
}

// resolveConfig loads the config file, if any, and lets explicit flags
// override it. Without a config file or --width, the width budget follows
// the terminal.
func resolveConfig(fs *pflag.FlagSet, opts *options, out io.Writer) (asciitable.Config, error) {
	cfg := asciitable.DefaultConfig()
	if opts.configFile != "" {
		f, err := os.Open(opts.configFile)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if cfg, err = asciitable.LoadConfig(f); err != nil {
			return cfg, fmt.Errorf("%s: %w", opts.configFile, err)
		}
	} else {
		cfg.MaxWidth = detectTerminalWidth(out)
	}

	if fs.Changed("width") {
		if opts.width < 0 {
			return cfg, fmt.Errorf("%w: --width must not be negative", asciitable.ErrInvalidConfig)
		}
		cfg.MaxWidth = opts.width
	}
	if fs.Changed("align") {
		a, err := asciitable.ParseAlignment(opts.align)
		if err != nil {
			return cfg, err
		}
		cfg.DefaultAlign = a
	}
	if fs.Changed("border") {
		b, err := asciitable.ParseBorder(opts.border)
		if err != nil {
			return cfg, err
		}
		cfg.Border = b
	}
	return cfg, nil
}

// applyHeaders sets column headers, leaving the rest of each column's
// config as it was.
func applyHeaders(cfg *asciitable.Config, header []string) {
	if len(header) == 0 {
		return
	}
	cols := make(map[int]asciitable.Column, len(cfg.Columns)+len(header))
	for i, c := range cfg.Columns {
		cols[i] = c
	}
	for i, h := range header {
		c := cols[i]
		c.Header = h
		cols[i] = c
	}
	cfg.Columns = cols
}

// detectTerminalWidth returns the width of out when it is a terminal, then
// $COLUMNS, then the default width.
func detectTerminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return asciitable.DefaultMaxWidth
}

// warnWideGlyphs logs when cells hold glyphs whose terminal width differs
// from their rune count. The table counts runes, so such columns drift.
func warnWideGlyphs(lgr logr.Logger, rows [][]string) {
	n := 0
	for _, row := range rows {
		for _, cell := range row {
			t := asciitable.ParseText(cell)
			if runewidth.StringWidth(t.Visible()) != t.Len() {
				n++
			}
		}
	}
	if n > 0 {
		lgr.Info("cells contain wide or zero-width glyphs; columns may not line up", "cells", n)
	}
}
