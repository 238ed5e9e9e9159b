package evaluator

import (
	"go.uber.org/zap"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/object"
	"github.com/funvibe/datelang/internal/symbols"
)

// activation holds the callee's slots as they were before the call.
type activation struct {
	syms   []*symbols.Symbol
	values []object.Object
}

func (a *activation) restore() {
	for i, sym := range a.syms {
		sym.Value = a.values[i]
	}
}

func (e *Evaluator) evalFunctionCall(node *ast.FunctionCall) object.Object {
	return e.call(node, node.Name, node.Arguments, symbols.FunctionSymbol)
}

// evalProcedureCall runs a procedure and yields its returned value, or nil
// when it finished without one.
func (e *Evaluator) evalProcedureCall(node *ast.ProcedureCall) object.Object {
	return e.call(node, node.Name, node.Arguments, symbols.ProcedureSymbol)
}

func (e *Evaluator) evalProcedureCallExpression(node *ast.ProcedureCall) object.Object {
	result := e.evalProcedureCall(node)
	if result == nil {
		return e.newError(node, "procedure %s returned no value", node.Name.Value)
	}
	return result
}

func (e *Evaluator) call(node ast.Node, name *ast.Identifier, args []ast.Expression, want symbols.SymbolKind) object.Object {
	if name == nil {
		return e.newError(node, "call without a callee")
	}
	callee, errObj := e.symbolFor(name, name.Symbol, name.Value)
	if errObj != nil {
		return errObj
	}
	if callee.Kind != want {
		return e.newError(node, "%s is a %s, cannot be called as a %s", callee.Name, callee.Kind, want)
	}
	formals := callee.Formals()
	if len(formals) != len(args) {
		return e.newError(node, "%s %s called with %d argument(s), %d expected",
			callee.Kind, callee.Name, len(args), len(formals))
	}

	// Arguments are evaluated left to right in the caller's bindings.
	values := make([]object.Object, len(args))
	for i, arg := range args {
		val := e.Eval(arg)
		if isError(val) {
			return val
		}
		values[i] = val
	}

	if e.MaxCallDepth > 0 && len(e.callStack) >= e.MaxCallDepth {
		return e.newError(node, "maximum call depth %d exceeded", e.MaxCallDepth)
	}

	// A re-entered callee gets a fresh activation; the caller's bindings come
	// back on return. Outermost calls leave their formals and locals set.
	locals := callee.Locals()
	if e.Scoping != config.ScopingFlat && e.active(callee.Name) {
		saved := e.saveActivation(formals, locals)
		defer saved.restore()
	}

	for i, f := range formals {
		sym, symErr := e.symbolFor(f, f.Symbol, f.Name.Value)
		if symErr != nil {
			return symErr
		}
		if err := e.store(f, sym, values[i]); err != nil {
			return err
		}
	}

	line := ast.Line(node)
	e.pushCall(callee.Name, line)
	defer e.popCall()
	if e.TraceCalls {
		e.Logger.Debug("call",
			zap.String("callee", callee.Name),
			zap.Int("line", line),
			zap.Int("depth", len(e.callStack)))
	}

	// Locals start fresh on every call.
	for _, vd := range locals {
		if result := e.evalVariableDef(vd); isError(result) {
			return result
		}
	}

	switch def := callee.DefinitionNode.(type) {
	case *ast.FunctionDef:
		return e.Eval(def.Body)
	case *ast.ProcedureDef:
		result := e.execBlock(def.Body)
		if rv, ok := result.(*ReturnValue); ok {
			return rv.Value
		}
		return result
	}
	return e.newError(node, "%s has no body", callee.Name)
}

// active reports whether name already has a frame on the call stack.
func (e *Evaluator) active(name string) bool {
	for _, frame := range e.callStack {
		if frame.Name == name {
			return true
		}
	}
	return false
}

func (e *Evaluator) saveActivation(formals []*ast.FormalArg, locals []*ast.VariableDef) *activation {
	a := &activation{}
	add := func(id ast.SymbolID) {
		if sym := e.table.Get(id); sym != nil {
			a.syms = append(a.syms, sym)
			a.values = append(a.values, sym.Value)
		}
	}
	for _, f := range formals {
		add(f.Symbol)
	}
	for _, vd := range locals {
		add(vd.Symbol)
	}
	return a
}
