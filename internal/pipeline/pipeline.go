package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Named is implemented by processors that want a readable stage name in logs.
type Named interface {
	Name() string
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	if ctx.Logger == nil {
		ctx.Logger = zap.NewNop()
	}
	for _, processor := range p.processors {
		before := len(ctx.Errors)
		start := time.Now()
		ctx = processor.Process(ctx)
		ctx.Logger.Debug("stage finished",
			zap.String("stage", stageName(processor)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("diagnostics", len(ctx.Errors)-before),
		)
		// Continue on errors; each stage decides whether it can run on a
		// context that already carries diagnostics.
	}
	return ctx
}

func stageName(p Processor) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
