package evaluator

import (
	"io"

	"go.uber.org/zap"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/object"
	"github.com/funvibe/datelang/internal/symbols"
	"github.com/funvibe/datelang/internal/typesystem"
)

// Evaluator is a tree-walking interpreter over a verified program. Runtime
// state lives in the symbol table's value slots.
type Evaluator struct {
	table *symbols.SymbolTable

	// Out receives each printed line as it is produced. May be nil.
	Out io.Writer
	// Output collects the printed lines, without trailing newlines.
	Output []string

	Scoping      config.Scoping
	MaxCallDepth int
	TraceCalls   bool
	Logger       *zap.Logger

	callStack []StackFrame
	evalDepth int
}

func New(table *symbols.SymbolTable) *Evaluator {
	return &Evaluator{
		table:        table,
		Scoping:      config.ScopingActivation,
		MaxCallDepth: config.DefaultMaxCallDepth,
		Logger:       zap.NewNop(),
	}
}

// Evaluate runs prog against table and returns the printed lines.
func Evaluate(prog *ast.Program, table *symbols.SymbolTable) ([]string, error) {
	e := New(table)
	err := e.Run(prog)
	return e.Output, err
}

// Run executes prog. The returned error, if any, is an *Error.
func (e *Evaluator) Run(prog *ast.Program) error {
	result := e.Eval(prog)
	if err, ok := result.(*Error); ok {
		return err
	}
	return nil
}

// maxEvalDepth is the maximum nesting depth of Eval calls.
// Prevents stack overflow from deeply nested programs.
const maxEvalDepth = 200000

func (e *Evaluator) Eval(node ast.Node) object.Object {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > maxEvalDepth {
		return e.newError(node, "maximum evaluation depth exceeded")
	}

	switch node := node.(type) {
	// Program and definitions
	case *ast.Program:
		return e.evalProgram(node)
	case *ast.VariableDef:
		return e.evalVariableDef(node)

	// Statements
	case *ast.Assignment:
		return e.evalAssignment(node)
	case *ast.PrintStatement:
		return e.evalPrintStatement(node)
	case *ast.LoopStatement:
		return e.evalLoopStatement(node)
	case *ast.UnlessStatement:
		return e.evalUnlessStatement(node)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(node)

	// Expressions
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.DateLiteral:
		return e.evalDateLiteral(node)
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.Identifier:
		return e.evalIdentifier(node)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(node)
	case *ast.UnlessExpression:
		return e.evalUnlessExpression(node)
	case *ast.AttrRead:
		return e.evalAttrRead(node)
	case *ast.FunctionCall:
		return e.evalFunctionCall(node)
	case *ast.ProcedureCall:
		return e.evalProcedureCallExpression(node)
	}

	if node == nil {
		return e.newError(nil, "missing node")
	}
	return e.newError(node, "cannot evaluate %s node", node.Kind())
}

func (e *Evaluator) evalProgram(prog *ast.Program) object.Object {
	// Int slots start at zero; dates must be assigned before they are read.
	for _, sym := range e.table.All() {
		if sym.Type == typesystem.Int && !sym.Kind.IsCallable() {
			sym.Value = &object.Integer{Value: 0}
		}
	}

	for _, def := range prog.Definitions {
		vd, ok := def.(*ast.VariableDef)
		if !ok {
			continue
		}
		if result := e.evalVariableDef(vd); isError(result) {
			return result
		}
	}

	// A top-level return ends the program.
	for _, stmt := range prog.Statements {
		result := e.execStatement(stmt)
		if isError(result) || isReturn(result) {
			return result
		}
	}
	return nil
}

func (e *Evaluator) evalVariableDef(vd *ast.VariableDef) object.Object {
	name := ""
	if vd.Name != nil {
		name = vd.Name.Value
	}
	sym, err := e.symbolFor(vd, vd.Symbol, name)
	if err != nil {
		return err
	}
	val := e.Eval(vd.Init)
	if isError(val) {
		return val
	}
	if err := e.store(vd, sym, val); err != nil {
		return err
	}
	return nil
}
