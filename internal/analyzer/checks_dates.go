package analyzer

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
)

// DateLiteralCheck allows a date literal only as the direct initializer of a
// variable_def or the direct right-hand side of an assignment.
//
// Both legal slots are the last child of their parent, so a literal is
// legal exactly when the next node left after it is its parent holding it
// in that slot. Leave remembers the literal and judges it on the next
// Leave.
type DateLiteralCheck struct {
	pending *ast.DateLiteral
	collector
}

func NewDateLiteralCheck() *DateLiteralCheck {
	return &DateLiteralCheck{}
}

func (c *DateLiteralCheck) Enter(node ast.Node) {}

func (c *DateLiteralCheck) Leave(node ast.Node) {
	if c.pending != nil {
		if !holdsLegally(node, c.pending) {
			c.reportMisplaced(c.pending)
		}
		c.pending = nil
	}
	if lit, ok := node.(*ast.DateLiteral); ok {
		c.pending = lit
	}
}

// Diagnostics flushes a literal still waiting for its parent, which only
// happens when a bare expression subtree was walked.
func (c *DateLiteralCheck) Diagnostics() []*diagnostics.DiagnosticError {
	if c.pending != nil {
		c.reportMisplaced(c.pending)
		c.pending = nil
	}
	return c.collector.Diagnostics()
}

func (c *DateLiteralCheck) reportMisplaced(lit *ast.DateLiteral) {
	c.report(diagnostics.ErrA004, lit.Token,
		"date literal %04d-%02d-%02d is only allowed as a variable initializer or assignment value",
		lit.Year, lit.Month, lit.Day)
}

func holdsLegally(parent ast.Node, lit *ast.DateLiteral) bool {
	switch p := parent.(type) {
	case *ast.VariableDef:
		return p.Init == ast.Expression(lit)
	case *ast.Assignment:
		return p.Value == ast.Expression(lit)
	}
	return false
}
