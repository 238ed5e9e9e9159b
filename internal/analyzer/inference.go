package analyzer

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/symbols"
	"github.com/funvibe/datelang/internal/typesystem"
)

// StaticType infers the type of expr without evaluating it. Identifiers use
// their bound symbol, or a name lookup when the resolver has not run yet.
// Anything it cannot see through is Unknown.
func StaticType(table *symbols.SymbolTable, expr ast.Expression) typesystem.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return typesystem.Int
	case *ast.DateLiteral:
		return typesystem.Date
	case *ast.StringLiteral:
		return typesystem.String
	case *ast.Identifier:
		sym := lookup(table, e)
		if sym == nil || sym.Kind.IsCallable() {
			return typesystem.Unknown
		}
		return sym.Type
	case *ast.AttrRead:
		return typesystem.Int
	case *ast.FunctionCall:
		return callType(table, e.Name)
	case *ast.ProcedureCall:
		return callType(table, e.Name)
	case *ast.UnlessExpression:
		return StaticType(table, e.Then)
	case *ast.BinaryExpression:
		return binaryType(e.Operator, StaticType(table, e.Left), StaticType(table, e.Right))
	}
	return typesystem.Unknown
}

func lookup(table *symbols.SymbolTable, ident *ast.Identifier) *symbols.Symbol {
	if ident == nil {
		return nil
	}
	if sym := table.Get(ident.Symbol); sym != nil {
		return sym
	}
	sym, _ := table.Find(ident.Value)
	return sym
}

func callType(table *symbols.SymbolTable, name *ast.Identifier) typesystem.Type {
	sym := lookup(table, name)
	if sym == nil || !sym.Kind.IsCallable() {
		return typesystem.Unknown
	}
	return sym.Type
}

func binaryType(op string, left, right typesystem.Type) typesystem.Type {
	switch op {
	case ast.OpEq, ast.OpLess, ast.OpMul, ast.OpDiv:
		return typesystem.Int
	case ast.OpPlus:
		switch {
		case left == typesystem.Date && right == typesystem.Int,
			left == typesystem.Int && right == typesystem.Date:
			return typesystem.Date
		case left == typesystem.Int && right == typesystem.Int:
			return typesystem.Int
		}
	case ast.OpMinus:
		switch {
		case left == typesystem.Date && right == typesystem.Int:
			return typesystem.Date
		case left == typesystem.Date && right == typesystem.Date,
			left == typesystem.Int && right == typesystem.Int:
			return typesystem.Int
		}
	}
	return typesystem.Unknown
}
