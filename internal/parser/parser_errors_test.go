package parser_test

import (
	"strings"
	"testing"

	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/lexer"
	"github.com/funvibe/datelang/internal/parser"
	"github.com/funvibe/datelang/internal/pipeline"
)

// parseWithErrors runs the lexer+parser and returns all diagnostic errors.
func parseWithErrors(input string) (*pipeline.PipelineContext, []*diagnostics.DiagnosticError) {
	ctx := pipeline.NewPipelineContext(input)
	lp := &lexer.LexerProcessor{}
	ctx = lp.Process(ctx)
	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	return ctx, ctx.Errors
}

// expectError asserts exactly one error with the given code.
func expectError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	ctx, errs := parseWithErrors(input)
	if len(errs) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	if len(errs) > 1 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected a single error, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	if errs[0].Code != code {
		t.Fatalf("expected error %s, got %s\ninput: %s", code, errs[0], input)
	}
	if ctx.AstRoot != nil {
		t.Errorf("a failed parse must not produce a program")
	}
	return errs[0]
}

func expectErrorContains(t *testing.T, input string, code diagnostics.ErrorCode, line int, substr string) {
	t.Helper()
	e := expectError(t, input, code)
	if e.Line() != line {
		t.Errorf("error on line %d, want %d: %s", e.Line(), line, e)
	}
	if !strings.Contains(e.Message, substr) {
		t.Errorf("expected error message to contain %q, got: %s", substr, e.Message)
	}
}

// ---------------------------------------------------------------------------
// P001: unexpected token
// ---------------------------------------------------------------------------

func TestP001_MissingEnd(t *testing.T) {
	input := "procedure P {} is\n  print 1\nprocedure"
	expectErrorContains(t, input, diagnostics.ErrP001, 3, "expected END")
}

func TestP001_WrongEndKeyword(t *testing.T) {
	input := "function FN {} return int is 1 end procedure\nprint 1"
	expectErrorContains(t, input, diagnostics.ErrP001, 1, "expected FUNCTION")
}

func TestP001_FunctionNeedsReturnType(t *testing.T) {
	expectErrorContains(t, "function FN {} is 1 end function\nprint 1", diagnostics.ErrP001, 1, "expected RETURN")
}

func TestP001_FunctionBodyIsExpression(t *testing.T) {
	expectError(t, "function FN {} return int is print 1 end function\nprint 1", diagnostics.ErrP001)
}

func TestP001_NameClasses(t *testing.T) {
	// Procedures need a capitalized name, functions an all-caps one
	expectErrorContains(t, "procedure add {} is print 1 end procedure\nprint 1", diagnostics.ErrP001, 1, "expected PROC_IDENT")
	expectErrorContains(t, "function Add {} return int is 1 end function\nprint 1", diagnostics.ErrP001, 1, "expected FUNC_IDENT")
	expectErrorContains(t, "var X = 1\nprint 1", diagnostics.ErrP001, 1, "expected IDENT")
}

func TestP001_DefinitionsBeforeStatements(t *testing.T) {
	expectErrorContains(t, "print 1\nvar x = 1", diagnostics.ErrP001, 2, "expected EOF")
}

func TestP001_EmptyProgram(t *testing.T) {
	expectErrorContains(t, "var x = 1", diagnostics.ErrP001, 1, "expected a statement, got end of input")
}

func TestP001_MisplacedString(t *testing.T) {
	expectErrorContains(t, `x = "abc"`, diagnostics.ErrP001, 1, "only allowed as a print item")
}

func TestP001_UnlessExpressionOnlyAsValue(t *testing.T) {
	expectError(t, "x = 1 + do 1 unless 0 otherwise 2 done", diagnostics.ErrP001)
	expectError(t, "print do 1 unless 0 otherwise 2 done", diagnostics.ErrP001)
}

func TestP001_UnlessExpressionNeedsOtherwise(t *testing.T) {
	expectErrorContains(t, "x = do 1 unless 0 done", diagnostics.ErrP001, 1, "expected OTHERWISE")
}

func TestP001_DoBlockNeedsTerminator(t *testing.T) {
	expectErrorContains(t, "do print 1\nprint 2", diagnostics.ErrP001, 2, "expected 'until' or 'unless'")
	expectErrorContains(t, "do print 1 unless x", diagnostics.ErrP001, 1, "expected DONE")
}

func TestP001_FormalSyntax(t *testing.T) {
	expectError(t, "procedure P {a} is print 1 end procedure\nP(1)", diagnostics.ErrP001)
	expectError(t, "procedure P {a[int],} is print 1 end procedure\nP(1)", diagnostics.ErrP001)
	expectError(t, "procedure P (a[int]) is print 1 end procedure\nP(1)", diagnostics.ErrP001)
}

func TestP001_CallSyntax(t *testing.T) {
	expectError(t, "P(1,)", diagnostics.ErrP001)
	expectError(t, "print FN", diagnostics.ErrP001)
	expectError(t, "P", diagnostics.ErrP001)
}

func TestP001_AttributeSyntax(t *testing.T) {
	expectError(t, "print d'", diagnostics.ErrP001)
	expectError(t, "d. = 1", diagnostics.ErrP001)
	expectError(t, "d.day 1", diagnostics.ErrP001)
}

func TestP001_OnlyFirstErrorReported(t *testing.T) {
	_, errs := parseWithErrors("x = )\ny = )\nz = )")
	if len(errs) != 1 || errs[0].Line() != 1 {
		t.Fatalf("got %v", errs)
	}
}

func TestP001_ExpressionDepthLimit(t *testing.T) {
	input := "x = " + strings.Repeat("(", parser.MaxRecursionDepth+10) + "1" + strings.Repeat(")", parser.MaxRecursionDepth+10)
	expectErrorContains(t, input, diagnostics.ErrP001, 1, "recursion depth limit exceeded")
}

// ---------------------------------------------------------------------------
// Lexical errors stop the parser
// ---------------------------------------------------------------------------

func TestLexicalErrorsSkipParsing(t *testing.T) {
	ctx, errs := parseWithErrors("print 1 #\nprint )")
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrL001 {
		t.Fatalf("got %v", errs)
	}
	if ctx.AstRoot != nil {
		t.Error("parser ran on a broken token stream")
	}
}
