package evaluator

import (
	"strings"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
)

// execStatement runs one statement. It returns nil on normal completion, a
// *ReturnValue when a return unwinds, or an *Error.
func (e *Evaluator) execStatement(stmt ast.Statement) object.Object {
	if call, ok := stmt.(*ast.ProcedureCall); ok {
		// Statement position: any returned value is discarded.
		if result := e.evalProcedureCall(call); isError(result) {
			return result
		}
		return nil
	}
	return e.Eval(stmt)
}

func (e *Evaluator) execBlock(stmts []ast.Statement) object.Object {
	for _, stmt := range stmts {
		result := e.execStatement(stmt)
		if isError(result) || isReturn(result) {
			return result
		}
	}
	return nil
}

func (e *Evaluator) evalAssignment(node *ast.Assignment) object.Object {
	val := e.Eval(node.Value)
	if isError(val) {
		return val
	}

	switch target := node.Target.(type) {
	case *ast.Identifier:
		sym, err := e.symbolFor(target, target.Symbol, target.Value)
		if err != nil {
			return err
		}
		if err := e.store(node, sym, val); err != nil {
			return err
		}
	case *ast.AttrAssign:
		return e.evalAttrAssign(target, val)
	default:
		return e.newError(node, "cannot assign to %T", node.Target)
	}
	return nil
}

func (e *Evaluator) evalPrintStatement(node *ast.PrintStatement) object.Object {
	parts := make([]string, 0, len(node.Items))
	for _, item := range node.Items {
		val := e.Eval(item)
		if isError(val) {
			return val
		}
		parts = append(parts, val.Inspect())
	}
	line := strings.Join(parts, " ")
	e.Output = append(e.Output, line)
	if e.Out != nil {
		if _, err := e.Out.Write([]byte(line + "\n")); err != nil {
			return e.newError(node, "writing output: %v", err)
		}
	}
	return nil
}

func (e *Evaluator) evalReturnStatement(node *ast.ReturnStatement) object.Object {
	val := e.Eval(node.Value)
	if isError(val) {
		return val
	}
	return &ReturnValue{Value: val}
}
