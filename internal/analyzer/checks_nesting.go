package analyzer

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
)

// NestingCheck rejects procedure calls anywhere inside a function body.
type NestingCheck struct {
	function *ast.FunctionDef // enclosing function, nil at top level
	collector
}

func NewNestingCheck() *NestingCheck {
	return &NestingCheck{}
}

func (c *NestingCheck) Enter(node ast.Node) {
	switch n := node.(type) {
	case *ast.FunctionDef:
		c.function = n
	case *ast.ProcedureCall:
		if c.function == nil {
			return
		}
		c.report(diagnostics.ErrA003, n.Token,
			"procedure call %s inside function %s", n.Name.Value, c.function.Name.Value)
	}
}

func (c *NestingCheck) Leave(node ast.Node) {
	if _, ok := node.(*ast.FunctionDef); ok {
		c.function = nil
	}
}
