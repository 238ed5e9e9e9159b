package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/evaluator"
	"github.com/funvibe/datelang/internal/logging"
	"github.com/funvibe/datelang/internal/prettyprinter"
	"github.com/funvibe/datelang/internal/runner"
	"github.com/funvibe/datelang/internal/symbols"
	"github.com/funvibe/datelang/internal/symstore"
)

const (
	exitOK          = 0
	exitDiagnostics = 1
	exitFatal       = 2
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(exitFatal)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	scoping    string
	failFast   bool
	symbols    bool
	symbolsDB  string
	debug      bool
	format     bool
	file       string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("datelang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: datelang [flags] <file%s|file%s>\n",
			strings.Join(config.SourceFileExtensions, "|file"),
			strings.Join(config.ASTFileExtensions, "|file"))
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "configuration file (default $"+config.ConfigEnvVar+")")
	fs.StringVar(&opts.scoping, "scoping", "", "call scoping: activation or flat")
	fs.BoolVar(&opts.failFast, "fail-fast", false, "stop static analysis at the first failing stage")
	fs.BoolVar(&opts.symbols, "symbols", false, "print the final symbol table")
	fs.StringVar(&opts.symbolsDB, "symbols-db", "", "SQLite file that receives the symbol table")
	fs.BoolVar(&opts.debug, "debug", false, "debug logging")
	fs.BoolVar(&opts.format, "format", false, "print the program as formatted source instead of running it")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one input file")
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

// loadConfig applies the config file, then command-line overrides.
func loadConfig(opts *options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = os.Getenv(config.ConfigEnvVar)
	}
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return nil, err
	}

	if opts.scoping != "" {
		cfg.Scoping = config.Scoping(opts.scoping)
	}
	if opts.failFast {
		cfg.FailFast = true
	}
	if opts.symbolsDB != "" {
		cfg.SymbolsDB = opts.symbolsDB
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}
	defer logger.Sync()

	runOpts := runner.Options{
		Config: cfg,
		Out:    stdout,
		Logger: logger,
	}
	color := logging.IsTerminal(stderr)

	if opts.format {
		return format(opts.file, runOpts, stdout, stderr, color)
	}

	res, err := runner.RunFile(opts.file, runOpts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}

	for _, d := range res.Errors {
		printDiagnostic(stderr, d, color)
	}
	if res.Fatal != nil {
		var evalErr *evaluator.Error
		if errors.As(res.Fatal, &evalErr) {
			printDiagnostic(stderr, evalErr.Diagnostic(opts.file), color)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", res.Fatal)
		}
	}

	if opts.symbols {
		printSymbols(stdout, res.Symbols)
	}

	if cfg.SymbolsDB != "" {
		if err := saveRun(cfg.SymbolsDB, opts.file, res); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFatal
		}
		logger.Info("run stored", zap.String("run_id", res.RunID), zap.String("db", cfg.SymbolsDB))
	}

	switch {
	case res.Fatal != nil:
		return exitFatal
	case len(res.Diagnostics) > 0:
		return exitDiagnostics
	}
	return exitOK
}

func format(path string, runOpts runner.Options, stdout, stderr io.Writer, color bool) int {
	res, err := runner.ParseFile(path, runOpts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}
	for _, d := range res.Errors {
		printDiagnostic(stderr, d, color)
	}
	if res.Program == nil || len(res.Errors) > 0 {
		return exitDiagnostics
	}
	fmt.Fprint(stdout, prettyprinter.Format(res.Program))
	return exitOK
}

func printDiagnostic(w io.Writer, d *diagnostics.DiagnosticError, color bool) {
	if color {
		fmt.Fprintf(w, "%s%s%s\n", colorRed, d.Error(), colorReset)
		return
	}
	fmt.Fprintln(w, d.Error())
}

func printSymbols(w io.Writer, infos []symbols.SymbolInfo) {
	for _, info := range infos {
		value := "<unset>"
		if info.Set {
			value = info.Value
		}
		fmt.Fprintf(w, "%-16s %-10s %-6s line %-4d %s\n", info.Name, info.Kind, info.Type, info.Line, value)
	}
}

func saveRun(path, source string, res *runner.Result) error {
	ctx := context.Background()
	store, err := symstore.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveRun(ctx, symstore.RunRecord{
		RunID:       res.RunID,
		Source:      source,
		OK:          res.OK(),
		Diagnostics: len(res.Diagnostics),
		Symbols:     res.Symbols,
	})
}
