package evaluator

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
)

// condition evaluates a loop or unless condition. Conditions are ints;
// non-zero is true.
func (e *Evaluator) condition(expr ast.Expression) (bool, object.Object) {
	val := e.Eval(expr)
	if isError(val) {
		return false, val
	}
	if _, ok := val.(*object.Integer); !ok {
		return false, e.newError(expr, "condition must be int, got %s", val.RuntimeType())
	}
	return object.Truthy(val), nil
}

// do body until cond: the body runs at least once, and again while the
// condition is false.
func (e *Evaluator) evalLoopStatement(node *ast.LoopStatement) object.Object {
	for {
		if result := e.execBlock(node.Body); result != nil {
			return result
		}
		done, errObj := e.condition(node.Condition)
		if errObj != nil {
			return errObj
		}
		if done {
			return nil
		}
	}
}

// do body unless cond [otherwise alt] done: body runs when cond is false.
func (e *Evaluator) evalUnlessStatement(node *ast.UnlessStatement) object.Object {
	cond, errObj := e.condition(node.Condition)
	if errObj != nil {
		return errObj
	}
	if !cond {
		return e.execBlock(node.Body)
	}
	if node.Otherwise != nil {
		return e.execBlock(node.Otherwise)
	}
	return nil
}

func (e *Evaluator) evalUnlessExpression(node *ast.UnlessExpression) object.Object {
	cond, errObj := e.condition(node.Condition)
	if errObj != nil {
		return errObj
	}
	if !cond {
		return e.Eval(node.Then)
	}
	return e.Eval(node.Otherwise)
}
