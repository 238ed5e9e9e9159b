package evaluator

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
)

// dateTarget loads the current date held by an attribute target.
func (e *Evaluator) dateTarget(node ast.Node, target *ast.Identifier) (*object.Date, object.Object) {
	if target == nil {
		return nil, e.newError(node, "attribute access without a target")
	}
	val := e.evalIdentifier(target)
	if isError(val) {
		return nil, val
	}
	d, ok := val.(*object.Date)
	if !ok {
		return nil, e.newError(node, "%s is %s, not date", target.Value, val.RuntimeType())
	}
	return d, nil
}

func (e *Evaluator) evalAttrRead(node *ast.AttrRead) object.Object {
	d, errObj := e.dateTarget(node, node.Target)
	if errObj != nil {
		return errObj
	}
	v, ok := d.Attr(node.Attr)
	if !ok {
		return e.newError(node, "unknown date attribute %s", node.Attr)
	}
	return &object.Integer{Value: v}
}

// evalAttrAssign replaces the target's slot with a copy carrying the new
// attribute value. A result that is not a calendar date is fatal.
func (e *Evaluator) evalAttrAssign(node *ast.AttrAssign, val object.Object) object.Object {
	d, errObj := e.dateTarget(node, node.Target)
	if errObj != nil {
		return errObj
	}
	i, ok := val.(*object.Integer)
	if !ok {
		return e.newError(node, "cannot assign %s to %s.%s", val.RuntimeType(), node.Target.Value, node.Attr)
	}
	updated, err := d.With(node.Attr, i.Value)
	if err != nil {
		return e.newError(node, "%s.%s = %d: %v", node.Target.Value, node.Attr, i.Value, err)
	}
	sym, symErr := e.symbolFor(node.Target, node.Target.Symbol, node.Target.Value)
	if symErr != nil {
		return symErr
	}
	sym.Value = updated
	return nil
}
