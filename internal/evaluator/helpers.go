package evaluator

import (
	"fmt"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
	"github.com/funvibe/datelang/internal/symbols"
)

// newError creates an error at node's line with the current stack trace.
func (e *Evaluator) newError(node ast.Node, format string, a ...interface{}) *Error {
	err := &Error{Message: fmt.Sprintf(format, a...), Line: ast.Line(node)}
	if len(e.callStack) > 0 {
		err.StackTrace = make([]StackFrame, len(e.callStack))
		copy(err.StackTrace, e.callStack)
	}
	return err
}

// pushCall adds a call frame to the stack
func (e *Evaluator) pushCall(name string, line int) {
	e.callStack = append(e.callStack, StackFrame{Name: name, Line: line})
}

// popCall removes the top call frame
func (e *Evaluator) popCall() {
	if len(e.callStack) > 0 {
		e.callStack = e.callStack[:len(e.callStack)-1]
	}
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

func isReturn(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == RETURN_VALUE_OBJ
	}
	return false
}

// symbolFor returns the entry bound to handle id, or an error naming the
// node when the handle is unbound.
func (e *Evaluator) symbolFor(node ast.Node, id ast.SymbolID, name string) (*symbols.Symbol, *Error) {
	sym := e.table.Get(id)
	if sym == nil {
		return nil, e.newError(node, "unresolved symbol %s", name)
	}
	return sym, nil
}

// store writes val into sym's slot. Only ints and dates are storable.
func (e *Evaluator) store(node ast.Node, sym *symbols.Symbol, val object.Object) *Error {
	if !val.RuntimeType().Storable() {
		return e.newError(node, "cannot store %s value in %s", val.RuntimeType(), sym.Name)
	}
	sym.Value = val
	return nil
}
