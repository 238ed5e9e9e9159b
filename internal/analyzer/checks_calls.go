package analyzer

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/symbols"
	"github.com/funvibe/datelang/internal/token"
	"github.com/funvibe/datelang/internal/typesystem"
)

// CallCheck verifies that every call targets a procedure or function, passes
// as many arguments as the callee declares formals, and that each argument's
// static type matches the formal's declared type. It also rejects values that
// cannot be stored: a call to a procedure without a return type and a string
// literal outside a print statement.
type CallCheck struct {
	table *symbols.SymbolTable
	collector
}

func NewCallCheck(table *symbols.SymbolTable) *CallCheck {
	return &CallCheck{table: table}
}

func (c *CallCheck) Enter(node ast.Node) {
	switch n := node.(type) {
	case *ast.FormalArg:
		if _, ok := typesystem.FromName(n.TypeName); !ok {
			name := ""
			if n.Name != nil {
				name = n.Name.Value
			}
			c.report(diagnostics.ErrA002, n.Token,
				"formal arg %s has invalid type %s, expected int or date", name, n.TypeName)
		}
	case *ast.FunctionCall:
		c.checkCall(n.Token, n.Name, n.Arguments, symbols.FunctionSymbol)
	case *ast.ProcedureCall:
		c.checkCall(n.Token, n.Name, n.Arguments, symbols.ProcedureSymbol)
	case *ast.VariableDef:
		c.checkValue(n.Init, false)
	case *ast.FunctionDef:
		c.checkValue(n.Body, false)
	case *ast.Assignment:
		c.checkValue(n.Value, false)
	case *ast.ReturnStatement:
		c.checkValue(n.Value, false)
	case *ast.PrintStatement:
		for _, item := range n.Items {
			c.checkValue(item, true)
		}
	case *ast.LoopStatement:
		c.checkValue(n.Condition, false)
	case *ast.UnlessStatement:
		c.checkValue(n.Condition, false)
	case *ast.UnlessExpression:
		c.checkValue(n.Then, false)
		c.checkValue(n.Condition, false)
		c.checkValue(n.Otherwise, false)
	case *ast.BinaryExpression:
		c.checkValue(n.Left, false)
		c.checkValue(n.Right, false)
	}
}

// checkValue reports expr when it sits where a value is needed but yields
// none. Strings are values only as print items. Call arguments are covered
// by the formal type comparison in checkCall.
func (c *CallCheck) checkValue(expr ast.Expression, printItem bool) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		if !printItem {
			c.report(diagnostics.ErrA002, e.Token, "string literal %q used as a value, only print accepts strings", e.Value)
		}
	case *ast.ProcedureCall:
		if e.Name == nil {
			return
		}
		callee := c.table.Get(e.Name.Symbol)
		if callee == nil || callee.Kind != symbols.ProcedureSymbol {
			return
		}
		if callee.Type == typesystem.None {
			c.report(diagnostics.ErrA002, e.Token,
				"procedure %s declares no return type, its call cannot be used as a value", e.Name.Value)
		}
	}
}

func (c *CallCheck) Leave(node ast.Node) {}

func (c *CallCheck) checkCall(tok token.Token, name *ast.Identifier, args []ast.Expression, want symbols.SymbolKind) {
	if name == nil {
		return
	}
	callee := c.table.Get(name.Symbol)
	if callee == nil {
		return // undefined, already reported by the resolver
	}
	if callee.Kind != want {
		c.report(diagnostics.ErrA002, tok, "%s is a %s, cannot be called as a %s", name.Value, callee.Kind, want)
		return
	}

	formals := callee.Formals()
	if len(args) != len(formals) {
		c.report(diagnostics.ErrA001, tok,
			"%s %s called with %d argument(s), %d expected", want, name.Value, len(args), len(formals))
		return
	}
	for i, arg := range args {
		expected, ok := typesystem.FromName(formals[i].TypeName)
		if !ok {
			continue // reported on the formal itself
		}
		actual := StaticType(c.table, arg)
		if !typesystem.Compatible(expected, actual) {
			c.report(diagnostics.ErrA002, arg.GetToken(),
				"argument %d of %s: calling with type %s, expected %s", i+1, name.Value, actual, expected)
		}
	}
}
