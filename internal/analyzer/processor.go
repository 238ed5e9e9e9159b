package analyzer

import (
	"github.com/funvibe/datelang/internal/pipeline"
)

type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Name() string { return "analyzer" }

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	analyzer := New(ctx.SymbolTable)
	analyzer.FailFast = ctx.Config.FailFast
	analyzer.Logger = ctx.Logger
	ctx.AddErrors(analyzer.Analyze(ctx.AstRoot)...)
	return ctx
}
