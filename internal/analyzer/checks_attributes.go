package analyzer

import (
	"strings"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/diagnostics"
)

// AttributeCheck validates date attribute names: all of them may be read,
// only day, month and year may be assigned.
type AttributeCheck struct {
	collector
}

func NewAttributeCheck() *AttributeCheck {
	return &AttributeCheck{}
}

func (c *AttributeCheck) Enter(node ast.Node) {
	switch n := node.(type) {
	case *ast.AttrRead:
		if !config.IsReadableDateAttr(n.Attr) {
			c.report(diagnostics.ErrA005, n.Token, "unknown date attribute %s (expected one of %s)",
				n.Attr, strings.Join(config.ReadableDateAttrs, ", "))
		}
	case *ast.AttrAssign:
		switch {
		case config.IsWritableDateAttr(n.Attr):
		case config.IsReadableDateAttr(n.Attr):
			c.report(diagnostics.ErrA005, n.Token, "date attribute %s is read-only", n.Attr)
		default:
			c.report(diagnostics.ErrA005, n.Token, "unknown date attribute %s (expected one of %s)",
				n.Attr, strings.Join(config.WritableDateAttrs, ", "))
		}
	}
}

func (c *AttributeCheck) Leave(node ast.Node) {}
