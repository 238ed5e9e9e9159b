package astload

import (
	"errors"

	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/pipeline"
	"github.com/funvibe/datelang/internal/token"
)

// Processor decodes ctx.SourceCode as a YAML AST document.
type Processor struct{}

func (p *Processor) Name() string { return "astload" }

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog, err := Decode([]byte(ctx.SourceCode))
	if err != nil {
		line := 1
		var de *DecodeError
		if errors.As(err, &de) {
			line = de.Line
			err = errors.New(de.Msg)
		}
		ctx.AddErrors(diagnostics.NewError(diagnostics.ErrP002, token.AtLine(line), err.Error()))
		return ctx
	}
	prog.File = ctx.FilePath
	ctx.AstRoot = prog
	return ctx
}
