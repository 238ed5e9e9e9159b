package analyzer

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/typesystem"
)

// ReturnCheck enforces declared return types: functions must declare int or
// date, procedures may declare nothing but then must not return a value.
type ReturnCheck struct {
	procedure *ast.ProcedureDef // enclosing procedure, nil elsewhere
	collector
}

func NewReturnCheck() *ReturnCheck {
	return &ReturnCheck{}
}

func (c *ReturnCheck) Enter(node ast.Node) {
	switch n := node.(type) {
	case *ast.FunctionDef:
		_, ok := typesystem.FromName(n.ReturnType)
		switch {
		case n.ReturnType == "":
			c.report(diagnostics.ErrA006, n.Token, "function %s declares no return type", n.Name.Value)
		case !ok:
			c.report(diagnostics.ErrA006, n.ReturnToken,
				"function %s has invalid return type %s, expected int or date", n.Name.Value, n.ReturnType)
		}
	case *ast.ProcedureDef:
		c.procedure = n
		if n.ReturnType == "" {
			return
		}
		if _, ok := typesystem.FromName(n.ReturnType); !ok {
			c.report(diagnostics.ErrA006, n.ReturnToken,
				"procedure %s has invalid return type %s, expected int or date", n.Name.Value, n.ReturnType)
		}
	case *ast.ReturnStatement:
		if c.procedure != nil && c.procedure.ReturnType == "" {
			c.report(diagnostics.ErrA006, n.Token,
				"procedure %s returns a value but declares no return type", c.procedure.Name.Value)
		}
	}
}

func (c *ReturnCheck) Leave(node ast.Node) {
	if _, ok := node.(*ast.ProcedureDef); ok {
		c.procedure = nil
	}
}
