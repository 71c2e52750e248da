package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/config"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/metrics"
	"github.com/katalvlaran/wordladder/query"
)

const version = "0.0.1"

// Exit codes.
const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

// exitError carries the process exit code of a failed run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// app holds the streams and flag values of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	first, last string
	configPath  string
	all         bool
	limit       int
	maxLength   int
	logLevel    string
	alphabet    string
	dicts       []string
	textfile    string
}

// run executes the command line args and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var xerr *exitError
	if errors.As(err, &xerr) {
		return xerr.code
	}
	// flag parsing and other cobra failures
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitUsage
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wordladder",
		Short:         "Solves word ladders.",
		Long:          "wordladder reads a word list and prints the shortest ladders from --first to --last,\nchanging one letter at a time.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd)
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	f := cmd.Flags()
	f.StringVar(&a.first, "first", "", "first word in word ladder (length must match last)")
	f.StringVar(&a.last, "last", "", "last word in word ladder (length must match first)")
	f.StringArrayVar(&a.dicts, "dict", nil, "word list file, one word per line (repeatable; default stdin)")
	f.BoolVar(&a.all, "all", false, "print every shortest ladder instead of the first")
	f.IntVar(&a.limit, "limit", 0, "print at most this many ladders with --all (0 = no limit)")
	f.IntVar(&a.maxLength, "max-length", 0, "ignore ladders longer than this many steps (0 = no limit)")
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&a.alphabet, "alphabet", "", "letters a word may contain")
	f.StringVar(&a.textfile, "metrics-textfile", "", "write Prometheus metrics to this file")

	return cmd
}

// settings merges the configuration file with the flags that were set.
func (a *app) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("dict") {
		cfg.Dictionaries = a.dicts
	}
	if f.Changed("all") {
		cfg.Mode = config.ModeFirst
		if a.all {
			cfg.Mode = config.ModeAll
		}
	}
	if f.Changed("limit") {
		cfg.Limit = a.limit
	}
	if f.Changed("max-length") {
		cfg.MaxLength = a.maxLength
	}
	if f.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if f.Changed("alphabet") {
		cfg.Alphabet = a.alphabet
	}
	if f.Changed("metrics-textfile") {
		cfg.MetricsTextfile = a.textfile
	}

	return cfg, cfg.Validate()
}

func (a *app) execute(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := a.settings(cmd)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return &exitError{code: exitUsage, err: err}
	}
	logger := newLogger(a.stderr, cfg.LogLevel)

	q := query.Query{First: a.first, Last: a.last}
	if err := query.NewValidator(cfg.Alphabet).Validate(q); err != nil {
		fmt.Fprintln(a.stderr, query.Message(err))
		return &exitError{code: exitUsage, err: err}
	}

	g, err := core.NewWordGraph(utf8.RuneCountInString(q.First), core.WithAlphabet(cfg.Alphabet))
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return &exitError{code: exitUsage, err: err}
	}
	g.IncludeAll(q.First, q.Last)

	reg := metrics.NewRegistry()
	start := time.Now()

	stats, err := a.load(ctx, cfg.Dictionaries, g)
	reg.ObserveLoad(stats)
	if err != nil {
		logger.Info("word list ingestion failed", "lines", stats.Lines, "error", err)
		fmt.Fprintf(a.stderr, "Failed to read word list: %s\n", strings.TrimPrefix(err.Error(), dictionary.ErrRead.Error()+": "))
		return &exitError{code: exitIO, err: err}
	}
	reg.ObserveGraph(g)
	logger.Debug("word graph built",
		"length", g.Length(),
		"nodes", g.Order(),
		"edges", g.Size(),
		"lines", stats.Lines,
		"rejected", stats.Rejected,
	)

	printed, err := a.print(ctx, g, q, cfg, reg)
	reg.ObserveQuery(time.Since(start))
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return &exitError{code: exitIO, err: err}
	}
	if printed == 0 {
		reg.ObserveNoLadder()
		logger.Info("no ladder found", "first", q.First, "last", q.Last)
	}

	if cfg.MetricsTextfile != "" {
		if err := reg.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("failed to write metrics", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	return nil
}

// load reads the dictionaries, or stdin when none are configured.
func (a *app) load(ctx context.Context, paths []string, g *core.WordGraph) (dictionary.Stats, error) {
	if len(paths) == 0 {
		return dictionary.Load(ctx, a.stdin, g)
	}
	return dictionary.LoadFiles(ctx, paths, g)
}

// print writes ladders one per line as [w0 w1 ... wk] and reports how many.
func (a *app) print(ctx context.Context, g *core.WordGraph, q query.Query, cfg config.Config, reg *metrics.Registry) (int, error) {
	want := 1
	if cfg.Mode == config.ModeAll {
		want = cfg.Limit
	}

	w := bufio.NewWriter(a.stdout)
	seq := ladder.AllShortestPaths(g, q.First, q.Last,
		ladder.WithContext(ctx),
		ladder.WithMaxLength(cfg.MaxLength),
		ladder.WithOnVisit(func(string, int) { reg.ObserveVisit() }),
	)
	n := 0
	for l := range seq.All() {
		reg.ObserveLadder(l)
		if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(l, " ")); err != nil {
			return n, err
		}
		n++
		if want > 0 && n == want {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return n, err
	}

	return n, seq.Err()
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
