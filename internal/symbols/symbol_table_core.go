package symbols

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
	"github.com/funvibe/datelang/internal/typesystem"
)

type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	ProcedureSymbol
	FunctionSymbol
	FormalArgSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case VariableSymbol:
		return "variable"
	case ProcedureSymbol:
		return "procedure"
	case FunctionSymbol:
		return "function"
	case FormalArgSymbol:
		return "formal-arg"
	}
	return "unknown"
}

// IsCallable reports whether symbols of this kind can be called.
func (k SymbolKind) IsCallable() bool {
	return k == ProcedureSymbol || k == FunctionSymbol
}

type Symbol struct {
	ID             ast.SymbolID
	Name           string
	Kind           SymbolKind
	Type           typesystem.Type // Declared or inferred; return type for callables
	DefinitionNode ast.Node        // Non-owning; the variable_def, formal_arg, procedure_def or function_def
	Value          object.Object   // Runtime slot, nil until assigned
}

// Line is the source line of the defining node.
func (s *Symbol) Line() int {
	return ast.Line(s.DefinitionNode)
}

// Formals returns the formal arguments of a callable symbol, or nil.
func (s *Symbol) Formals() []*ast.FormalArg {
	switch def := s.DefinitionNode.(type) {
	case *ast.ProcedureDef:
		return def.Formals
	case *ast.FunctionDef:
		return def.Formals
	}
	return nil
}

// Locals returns the local variable definitions of a callable symbol, or nil.
func (s *Symbol) Locals() []*ast.VariableDef {
	switch def := s.DefinitionNode.(type) {
	case *ast.ProcedureDef:
		return def.Locals
	case *ast.FunctionDef:
		return def.Locals
	}
	return nil
}
