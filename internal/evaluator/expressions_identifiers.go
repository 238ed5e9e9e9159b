package evaluator

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
)

func (e *Evaluator) evalIdentifier(node *ast.Identifier) object.Object {
	sym, errObj := e.symbolFor(node, node.Symbol, node.Value)
	if errObj != nil {
		return errObj
	}
	if sym.Kind.IsCallable() {
		return e.newError(node, "%s %s used as a value", sym.Kind, sym.Name)
	}
	if sym.Value == nil {
		return e.newError(node, "%s read before assignment", sym.Name)
	}
	return sym.Value
}

func (e *Evaluator) evalDateLiteral(node *ast.DateLiteral) object.Object {
	d, err := object.NewDate(node.Year, node.Month, node.Day)
	if err != nil {
		return e.newError(node, "%v", err)
	}
	return d
}
