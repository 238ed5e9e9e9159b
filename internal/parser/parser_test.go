package parser_test

import (
	"strings"
	"testing"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/lexer"
	"github.com/funvibe/datelang/internal/parser"
	"github.com/funvibe/datelang/internal/pipeline"
	"github.com/funvibe/datelang/internal/prettyprinter"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	lexerProcessor := &lexer.LexerProcessor{}
	ctx = lexerProcessor.Process(ctx)
	parserProcessor := &parser.ParserProcessor{}
	ctx = parserProcessor.Process(ctx)

	if len(ctx.Errors) > 0 {
		var errorMessages []string
		for _, err := range ctx.Errors {
			errorMessages = append(errorMessages, err.Error())
		}
		t.Fatalf("parsing failed with errors:\n%s\ninput: %s", strings.Join(errorMessages, "\n"), input)
	}
	if ctx.AstRoot == nil {
		t.Fatalf("no program for input: %s", input)
	}
	return ctx.AstRoot
}

// TestParser checks the parsed structure through the source printer, which
// parenthesizes only where precedence requires it.
func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"assignment", "a = 5", "a = 5\n"},
		{"infix_precedence", "a = 5 + 2 * 10", "a = 5 + 2 * 10\n"},
		{"grouping", "a = (5 + 2) * 10", "a = (5 + 2) * 10\n"},
		{"left_assoc", "a = 1 - 2 - 3", "a = 1 - 2 - 3\n"},
		{"compare_lowest", "a = 1 + 2 < 3 * 4", "a = 1 + 2 < 3 * 4\n"},
		{"compare_left_assoc", "a = 1 = 2 = 0", "a = 1 = 2 = 0\n"},
		{"negative_literal", "a = -5", "a = -5\n"},
		{"negated_name", "a = -b", "a = 0 - b\n"},
		{"unary_plus", "a = +b", "a = b\n"},
		{"attr_read", "a = d'weeknum * 2", "a = d'weeknum * 2\n"},
		{"attr_assign", "d.year = 2020", "d.year = 2020\n"},
		{"unless_expression", "a = do b unless c < 1 otherwise 0 done", "a = do b unless c < 1 otherwise 0 done\n"},
		{"print_items", `print "x" & x & FN(x) & Proc(x, 1)`, "print \"x\" & x & FN(x) & Proc(x, 1)\n"},
		{"statement_list", "a = 1, b = 2, print a", "a = 1,\nb = 2,\nprint a\n"},
		{"loop", "do a = a + 1 until a = 10", "do\n    a = a + 1\nuntil a = 10\n"},
		{"unless_no_otherwise", "do print 1 unless a done", "do\n    print 1\nunless a\ndone\n"},
		{"procedure_call", "Go()", "Go()\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := prettyprinter.Format(parseProgram(t, tc.input))
			if got != tc.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestParseDefinitions(t *testing.T) {
	input := `var start = 2020-01-01
var count = 0
procedure Step {by[int], at[date]} return date
var tmp = 1
var other = at
is
  tmp = by,
  return at + tmp
end procedure
function SQ {v[int]} return int is v * v end function
print SQ(3) & Step(1, start)`

	program := parseProgram(t, input)
	if len(program.Definitions) != 4 {
		t.Fatalf("got %d definitions", len(program.Definitions))
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements", len(program.Statements))
	}

	v, ok := program.Definitions[0].(*ast.VariableDef)
	if !ok || v.Name.Value != "start" {
		t.Fatalf("definition 0 = %#v", program.Definitions[0])
	}
	lit, ok := v.Init.(*ast.DateLiteral)
	if !ok || lit.Year != 2020 || lit.Month != 1 || lit.Day != 1 {
		t.Errorf("init = %#v", v.Init)
	}

	proc, ok := program.Definitions[2].(*ast.ProcedureDef)
	if !ok {
		t.Fatalf("definition 2 = %#v", program.Definitions[2])
	}
	if proc.Name.Value != "Step" || proc.ReturnType != "date" || proc.ReturnToken.Line != 3 {
		t.Errorf("procedure header = %s %s line %d", proc.Name.Value, proc.ReturnType, proc.ReturnToken.Line)
	}
	if len(proc.Formals) != 2 || proc.Formals[0].Name.Value != "by" || proc.Formals[0].TypeName != "int" ||
		proc.Formals[1].Name.Value != "at" || proc.Formals[1].TypeName != "date" {
		t.Errorf("formals = %#v", proc.Formals)
	}
	if len(proc.Locals) != 2 || proc.Locals[1].Name.Value != "other" {
		t.Errorf("locals = %#v", proc.Locals)
	}
	if len(proc.Body) != 2 {
		t.Fatalf("body has %d statements", len(proc.Body))
	}
	if _, ok := proc.Body[1].(*ast.ReturnStatement); !ok {
		t.Errorf("last statement = %T", proc.Body[1])
	}

	fn, ok := program.Definitions[3].(*ast.FunctionDef)
	if !ok || fn.Name.Value != "SQ" || fn.ReturnType != "int" || len(fn.Formals) != 1 {
		t.Fatalf("definition 3 = %#v", program.Definitions[3])
	}
	if bin, ok := fn.Body.(*ast.BinaryExpression); !ok || bin.Operator != ast.OpMul {
		t.Errorf("function body = %#v", fn.Body)
	}

	printStmt := program.Statements[0].(*ast.PrintStatement)
	if _, ok := printStmt.Items[0].(*ast.FunctionCall); !ok {
		t.Errorf("item 0 = %T", printStmt.Items[0])
	}
	call, ok := printStmt.Items[1].(*ast.ProcedureCall)
	if !ok || len(call.Arguments) != 2 {
		t.Errorf("item 1 = %#v", printStmt.Items[1])
	}
}

func TestProcedureWithoutReturnType(t *testing.T) {
	program := parseProgram(t, "procedure Hi {} is print 1 end procedure\nHi()")
	proc := program.Definitions[0].(*ast.ProcedureDef)
	if proc.ReturnType != "" || len(proc.Formals) != 0 || len(proc.Locals) != 0 {
		t.Errorf("got %#v", proc)
	}
	if _, ok := program.Statements[0].(*ast.ProcedureCall); !ok {
		t.Errorf("statement = %T", program.Statements[0])
	}
}

func TestNodePositions(t *testing.T) {
	program := parseProgram(t, "var x = 1\nx = x +\n  2,\nprint x")
	assign := program.Statements[0].(*ast.Assignment)
	if assign.Token.Line != 2 {
		t.Errorf("assignment on line %d", assign.Token.Line)
	}
	bin := assign.Value.(*ast.BinaryExpression)
	if bin.Right.GetToken().Line != 3 {
		t.Errorf("right operand on line %d", bin.Right.GetToken().Line)
	}
	if program.Statements[1].GetToken().Line != 4 {
		t.Errorf("print on line %d", program.Statements[1].GetToken().Line)
	}
}

func TestUnlessStatementBranches(t *testing.T) {
	program := parseProgram(t, "do a = 1, b = 2 unless c otherwise a = 3 done")
	stmt, ok := program.Statements[0].(*ast.UnlessStatement)
	if !ok {
		t.Fatalf("statement = %T", program.Statements[0])
	}
	if len(stmt.Body) != 2 || len(stmt.Otherwise) != 1 {
		t.Errorf("body %d, otherwise %d", len(stmt.Body), len(stmt.Otherwise))
	}
	if id, ok := stmt.Condition.(*ast.Identifier); !ok || id.Value != "c" {
		t.Errorf("condition = %#v", stmt.Condition)
	}
}

func TestNestedDoBlocks(t *testing.T) {
	input := "do do i = i + 1 until i = 3, j = j + 1 until j = 2"
	program := parseProgram(t, input)
	outer, ok := program.Statements[0].(*ast.LoopStatement)
	if !ok || len(outer.Body) != 2 {
		t.Fatalf("got %#v", program.Statements[0])
	}
	if _, ok := outer.Body[0].(*ast.LoopStatement); !ok {
		t.Errorf("inner = %T", outer.Body[0])
	}
}
