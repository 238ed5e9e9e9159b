package evaluator

import (
	"github.com/funvibe/datelang/internal/pipeline"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Name() string { return "evaluator" }

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	eval := New(ctx.SymbolTable)
	eval.Out = ctx.Out
	if ctx.Config != nil {
		eval.Scoping = ctx.Config.Scoping
		eval.MaxCallDepth = ctx.Config.MaxCallDepth
		eval.TraceCalls = ctx.Config.Log.TraceCalls
	}
	if ctx.Logger != nil {
		eval.Logger = ctx.Logger
	}

	err := eval.Run(ctx.AstRoot)
	ctx.Output = eval.Output
	if err != nil {
		// Runtime failures stay out of ctx.Errors: the output printed so far
		// is still a valid partial result.
		ctx.Fatal = err
	}
	return ctx
}
