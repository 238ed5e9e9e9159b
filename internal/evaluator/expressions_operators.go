package evaluator

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
)

func (e *Evaluator) evalBinaryExpression(node *ast.BinaryExpression) object.Object {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}

	switch l := left.(type) {
	case *object.Integer:
		switch r := right.(type) {
		case *object.Integer:
			return e.evalIntegerInfix(node, l.Value, r.Value)
		case *object.Date:
			// int + date commutes; nothing else is defined
			if node.Operator == ast.OpPlus {
				return e.shiftDate(node, r, l.Value)
			}
		}
	case *object.Date:
		switch r := right.(type) {
		case *object.Integer:
			switch node.Operator {
			case ast.OpPlus:
				return e.shiftDate(node, l, r.Value)
			case ast.OpMinus:
				return e.shiftDate(node, l, -r.Value)
			}
		case *object.Date:
			return e.evalDateInfix(node, l, r)
		}
	}

	return e.newError(node, "unsupported operand types for %s: %s and %s",
		node.Operator, left.RuntimeType(), right.RuntimeType())
}

func (e *Evaluator) shiftDate(node *ast.BinaryExpression, d *object.Date, days int64) object.Object {
	shifted, err := d.AddDays(days)
	if err != nil {
		return e.newError(node, "shifting %s: %v", d.Inspect(), err)
	}
	return shifted
}

func (e *Evaluator) evalIntegerInfix(node *ast.BinaryExpression, l, r int64) object.Object {
	switch node.Operator {
	case ast.OpPlus:
		return &object.Integer{Value: l + r}
	case ast.OpMinus:
		return &object.Integer{Value: l - r}
	case ast.OpMul:
		return &object.Integer{Value: l * r}
	case ast.OpDiv:
		if r == 0 {
			return e.newError(node, "division by zero")
		}
		// Truncates toward zero
		return &object.Integer{Value: l / r}
	case ast.OpEq:
		return object.FromBool(l == r)
	case ast.OpLess:
		return object.FromBool(l < r)
	}
	return e.newError(node, "unknown operator: int %s int", node.Operator)
}

func (e *Evaluator) evalDateInfix(node *ast.BinaryExpression, l, r *object.Date) object.Object {
	switch node.Operator {
	case ast.OpMinus:
		return &object.Integer{Value: l.DaysSince(r)}
	case ast.OpEq:
		return object.FromBool(l.Equal(r))
	case ast.OpLess:
		return object.FromBool(l.Before(r))
	}
	return e.newError(node, "unsupported operand types for %s: date and date", node.Operator)
}
