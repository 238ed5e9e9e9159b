package analyzer

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/symbols"
)

// Resolver binds every identifier use to its table entry. The name inside
// a formal_arg is a declaration and is skipped.
type Resolver struct {
	table    *symbols.SymbolTable
	inFormal int
	collector
}

func NewResolver(table *symbols.SymbolTable) *Resolver {
	return &Resolver{table: table}
}

func (r *Resolver) Enter(node ast.Node) {
	switch n := node.(type) {
	case *ast.FormalArg:
		r.inFormal++
	case *ast.Identifier:
		if r.inFormal > 0 {
			return
		}
		sym, ok := r.table.Find(n.Value)
		if !ok {
			r.report(diagnostics.ErrS002, n.Token, "undefined symbol %s", n.Value)
			return
		}
		n.Symbol = sym.ID
	}
}

func (r *Resolver) Leave(node ast.Node) {
	if _, ok := node.(*ast.FormalArg); ok {
		r.inFormal--
	}
}

// Resolve runs the resolver over prog.
func Resolve(prog *ast.Program, table *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	r := NewResolver(table)
	ast.Walk(r, prog)
	return r.Diagnostics()
}
