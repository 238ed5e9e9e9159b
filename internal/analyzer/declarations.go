package analyzer

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/symbols"
	"github.com/funvibe/datelang/internal/typesystem"
)

// BuildSymbols registers every definition of prog in table: top-level
// variables, procedures and functions, plus the formal arguments and local
// variables of each callable. Each defining node receives its own handle.
// A name that is already taken yields a RedefinitionError and is not
// registered again.
func BuildSymbols(prog *ast.Program, table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	b := &builder{table: table}
	for _, def := range prog.Definitions {
		switch d := def.(type) {
		case *ast.VariableDef:
			b.variable(d)
		case *ast.ProcedureDef:
			d.Symbol = b.define(d.Name, symbols.ProcedureSymbol, returnType(d.ReturnType), d)
			b.callableHeader(d.Formals, d.Locals)
		case *ast.FunctionDef:
			d.Symbol = b.define(d.Name, symbols.FunctionSymbol, returnType(d.ReturnType), d)
			b.callableHeader(d.Formals, d.Locals)
		}
	}
	return b.errs
}

type builder struct {
	table *symbols.SymbolTable
	errs  []*diagnostics.DiagnosticError
}

func (b *builder) define(name *ast.Identifier, kind symbols.SymbolKind, t typesystem.Type, node ast.Node) ast.SymbolID {
	if name == nil {
		return ast.NoSymbol
	}
	sym, ok := b.table.Define(name.Value, kind, t, node)
	if !ok {
		b.errs = append(b.errs, diagnostics.NewErrorf(diagnostics.ErrS001, node.GetToken(),
			"redefined %s %s (earlier definition on line %d)", kind, name.Value, sym.Line()))
		return ast.NoSymbol
	}
	return sym.ID
}

func (b *builder) variable(d *ast.VariableDef) {
	t := StaticType(b.table, d.Init)
	d.Symbol = b.define(d.Name, symbols.VariableSymbol, t, d)
}

// Formals first, so local initializers can refer to them.
func (b *builder) callableHeader(formals []*ast.FormalArg, locals []*ast.VariableDef) {
	for _, f := range formals {
		t, _ := typesystem.FromName(f.TypeName)
		f.Symbol = b.define(f.Name, symbols.FormalArgSymbol, t, f)
		if f.Name != nil {
			f.Name.Symbol = f.Symbol
		}
	}
	for _, l := range locals {
		b.variable(l)
	}
}

// returnType maps a declared return type; an empty one is None and an
// invalid one Unknown (the return-type check reports it).
func returnType(name string) typesystem.Type {
	if name == "" {
		return typesystem.None
	}
	t, _ := typesystem.FromName(name)
	return t
}
