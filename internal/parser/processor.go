package parser

import (
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/pipeline"
	"github.com/funvibe/datelang/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Name() string { return "parser" }

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// This case should ideally not be hit if lexer runs first, but as a safeguard:
		ctx.AddErrors(diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil"))
		return ctx
	}
	// A token stream with lexical errors has holes in it; parsing it would
	// only report follow-on errors.
	if ctx.HasErrors() {
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	if program := parser.ParseProgram(); program != nil {
		ctx.AstRoot = program
	}
	return ctx
}
