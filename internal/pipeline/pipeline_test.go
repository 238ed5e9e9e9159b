package pipeline

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/token"
)

type recordStage struct {
	name  string
	trace *[]string
	fail  bool
}

func (s *recordStage) Name() string { return s.name }

func (s *recordStage) Process(ctx *PipelineContext) *PipelineContext {
	*s.trace = append(*s.trace, s.name)
	if s.fail {
		ctx.AddErrors(diagnostics.NewError(diagnostics.ErrP001, token.AtLine(1), s.name+" failed"))
	}
	return ctx
}

type anonymousStage struct{}

func (anonymousStage) Process(ctx *PipelineContext) *PipelineContext { return ctx }

func TestRunOrderAndErrors(t *testing.T) {
	var trace []string
	core, logs := observer.New(zapcore.DebugLevel)

	ctx := NewPipelineContext("print 1")
	ctx.FilePath = "a.dl"
	ctx.Logger = zap.New(core)

	ctx = New(
		&recordStage{name: "one", trace: &trace, fail: true},
		&recordStage{name: "two", trace: &trace},
		anonymousStage{},
	).Run(ctx)

	if len(trace) != 2 || trace[0] != "one" || trace[1] != "two" {
		t.Errorf("trace = %v", trace)
	}
	if !ctx.HasErrors() || ctx.Errors[0].File != "a.dl" {
		t.Errorf("errors = %v", ctx.Errors)
	}

	entries := logs.FilterMessage("stage finished").All()
	if len(entries) != 3 {
		t.Fatalf("got %d stage logs", len(entries))
	}
	if got := entries[0].ContextMap()["stage"]; got != "one" {
		t.Errorf("stage = %v", got)
	}
	if got := entries[0].ContextMap()["diagnostics"]; got != int64(1) {
		t.Errorf("diagnostics = %v", got)
	}
	if got := entries[2].ContextMap()["stage"]; got != "pipeline.anonymousStage" {
		t.Errorf("unnamed stage = %v", got)
	}
}

func TestAddErrorsKeepsFile(t *testing.T) {
	ctx := NewPipelineContext("")
	ctx.FilePath = "main.dl"
	e := diagnostics.NewError(diagnostics.ErrS001, token.AtLine(2), "x")
	e.File = "other.dl"
	ctx.AddErrors(e)
	if ctx.Errors[0].File != "other.dl" {
		t.Errorf("file overwritten: %s", ctx.Errors[0].File)
	}
}

func TestRunWithoutLogger(t *testing.T) {
	ctx := &PipelineContext{}
	ctx = New(anonymousStage{}).Run(ctx)
	if ctx.Logger == nil {
		t.Error("Run should install a no-op logger")
	}
}
