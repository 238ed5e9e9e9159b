// Package runner is the entry point of datelang: it takes a program (as an
// AST, source text or a file), runs the static stages and, when they report
// nothing, evaluates it.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/funvibe/datelang/internal/analyzer"
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/astload"
	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/evaluator"
	"github.com/funvibe/datelang/internal/lexer"
	"github.com/funvibe/datelang/internal/parser"
	"github.com/funvibe/datelang/internal/pipeline"
	"github.com/funvibe/datelang/internal/symbols"
)

type Options struct {
	Config   *config.Config // nil means config.Default()
	Out      io.Writer      // Receives printed lines as they are produced
	Logger   *zap.Logger    // nil means no logging
	FilePath string         // Stamped on diagnostics
}

type Diagnostic struct {
	Line     int
	Message  string
	Code     diagnostics.ErrorCode
	Category string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: [%s] %s", d.Line, d.Code, d.Message)
}

type Result struct {
	RunID string
	// Diagnostics are ordered by line. When empty, the program was
	// evaluated and Output is authoritative.
	Diagnostics []Diagnostic
	Output      []string
	// Fatal is set when evaluation aborted; Output then holds what was
	// printed before.
	Fatal   error
	Symbols []symbols.SymbolInfo
	Program *ast.Program

	// Errors are the diagnostics as produced, with token and file.
	Errors []*diagnostics.DiagnosticError
}

// OK reports whether the run produced no diagnostics and no fatal error.
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0 && r.Fatal == nil
}

// Run verifies and evaluates an already built program.
func Run(program *ast.Program, opts Options) *Result {
	ctx := newContext("", opts)
	ctx.AstRoot = program
	return run(ctx, semanticStages()...)
}

// RunSource lexes, parses, verifies and evaluates datelang source text.
func RunSource(source string, opts Options) *Result {
	ctx := newContext(source, opts)
	return run(ctx, append(sourceStages(), semanticStages()...)...)
}

// RunDocument decodes a YAML AST document, then verifies and evaluates it.
func RunDocument(doc []byte, opts Options) *Result {
	ctx := newContext(string(doc), opts)
	return run(ctx, append(documentStages(), semanticStages()...)...)
}

// RunFile reads path and picks the front-end by its extension.
func RunFile(path string, opts Options) (*Result, error) {
	return runFile(path, opts, true)
}

// ParseFile runs only the front-end on path. The result carries the
// program (when it could be built) and front-end diagnostics; nothing is
// verified or evaluated.
func ParseFile(path string, opts Options) (*Result, error) {
	return runFile(path, opts, false)
}

func runFile(path string, opts Options, evaluate bool) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if opts.FilePath == "" {
		opts.FilePath = path
	}

	var stages []pipeline.Processor
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case hasExt(config.ASTFileExtensions, ext):
		stages = documentStages()
	case hasExt(config.SourceFileExtensions, ext):
		stages = sourceStages()
	default:
		return nil, fmt.Errorf("%s: unsupported file extension %q", path, ext)
	}
	if evaluate {
		stages = append(stages, semanticStages()...)
	}
	return run(newContext(string(data), opts), stages...), nil
}

func hasExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

func sourceStages() []pipeline.Processor {
	return []pipeline.Processor{&lexer.LexerProcessor{}, &parser.ParserProcessor{}}
}

func documentStages() []pipeline.Processor {
	return []pipeline.Processor{&astload.Processor{}}
}

func semanticStages() []pipeline.Processor {
	return []pipeline.Processor{
		&analyzer.SemanticAnalyzerProcessor{},
		&evaluator.EvaluatorProcessor{},
	}
}

func newContext(source string, opts Options) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	ctx.RunID = uuid.NewString()
	ctx.FilePath = opts.FilePath
	ctx.Out = opts.Out
	if opts.Config != nil {
		ctx.Config = opts.Config
	}
	if opts.Logger != nil {
		ctx.Logger = opts.Logger.With(zap.String("run_id", ctx.RunID))
	}
	return ctx
}

func run(ctx *pipeline.PipelineContext, stages ...pipeline.Processor) *Result {
	ctx = pipeline.New(stages...).Run(ctx)

	diagnostics.Sort(ctx.Errors)
	res := &Result{
		RunID:   ctx.RunID,
		Output:  ctx.Output,
		Fatal:   ctx.Fatal,
		Symbols: ctx.SymbolTable.Snapshot(),
		Program: ctx.AstRoot,
		Errors:  ctx.Errors,
	}
	for _, err := range ctx.Errors {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Line:     err.Line(),
			Message:  err.Message,
			Code:     err.Code,
			Category: err.Code.Category(),
		})
	}
	ctx.Logger.Debug("run finished",
		zap.Int("diagnostics", len(res.Diagnostics)),
		zap.Int("output_lines", len(res.Output)),
		zap.Bool("fatal", res.Fatal != nil),
	)
	return res
}
