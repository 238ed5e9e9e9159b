package pipeline

import (
	"io"

	"go.uber.org/zap"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/symbols"
	"github.com/funvibe/datelang/internal/token"
)

// PipelineContext carries the state of one run from stage to stage.
type PipelineContext struct {
	RunID       string
	SourceCode  string
	FilePath    string
	TokenStream []token.Token
	AstRoot     *ast.Program
	SymbolTable *symbols.SymbolTable
	Errors      []*diagnostics.DiagnosticError

	// Set by the evaluator
	Output []string
	Fatal  error

	// Out receives printed lines as they are produced, in addition to Output.
	Out    io.Writer
	Config *config.Config
	Logger *zap.Logger
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		SourceCode:  sourceCode,
		SymbolTable: symbols.NewSymbolTable(),
		Config:      config.Default(),
		Logger:      zap.NewNop(),
	}
}

// AddErrors appends diagnostics, stamping them with the context's file path.
func (ctx *PipelineContext) AddErrors(errs ...*diagnostics.DiagnosticError) {
	for _, err := range errs {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
	}
}

// HasErrors reports whether any stage produced diagnostics.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
