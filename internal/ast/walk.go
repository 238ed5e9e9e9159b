package ast

// Pass is a two-phase traversal: Enter is called before a node's children
// are visited, Leave after.
type Pass interface {
	Enter(node Node)
	Leave(node Node)
}

// PassFuncs adapts a pair of functions to Pass. Either may be nil.
type PassFuncs struct {
	EnterFn func(Node)
	LeaveFn func(Node)
}

func (p PassFuncs) Enter(n Node) {
	if p.EnterFn != nil {
		p.EnterFn(n)
	}
}

func (p PassFuncs) Leave(n Node) {
	if p.LeaveFn != nil {
		p.LeaveFn(n)
	}
}

// Walk traverses node depth-first, children in source order.
// Attribute and type names are plain strings, not children.
func Walk(pass Pass, node Node) {
	if isNil(node) {
		return
	}
	node.Accept(&walker{pass: pass})
}

// Inspect is Walk with plain functions.
func Inspect(node Node, enter, leave func(Node)) {
	Walk(PassFuncs{EnterFn: enter, LeaveFn: leave}, node)
}

// isNil catches typed nil pointers stored in an interface, which partial
// trees from the AST decoder may contain.
func isNil(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case *Identifier:
		return n == nil
	case *VariableDef:
		return n == nil
	case *FormalArg:
		return n == nil
	}
	return false
}

type walker struct {
	pass Pass
}

func (w *walker) visit(node Node) {
	if isNil(node) {
		return
	}
	node.Accept(w)
}

func (w *walker) visitStatements(stmts []Statement) {
	for _, s := range stmts {
		w.visit(s)
	}
}

func (w *walker) visitExpressions(exprs []Expression) {
	for _, e := range exprs {
		w.visit(e)
	}
}

func (w *walker) visitHeader(name *Identifier, formals []*FormalArg, locals []*VariableDef) {
	w.visit(name)
	for _, f := range formals {
		w.visit(f)
	}
	for _, l := range locals {
		w.visit(l)
	}
}

func (w *walker) VisitProgram(node *Program) {
	w.pass.Enter(node)
	for _, d := range node.Definitions {
		w.visit(d)
	}
	w.visitStatements(node.Statements)
	w.pass.Leave(node)
}

func (w *walker) VisitVariableDef(node *VariableDef) {
	w.pass.Enter(node)
	w.visit(node.Name)
	w.visit(node.Init)
	w.pass.Leave(node)
}

func (w *walker) VisitProcedureDef(node *ProcedureDef) {
	w.pass.Enter(node)
	w.visitHeader(node.Name, node.Formals, node.Locals)
	w.visitStatements(node.Body)
	w.pass.Leave(node)
}

func (w *walker) VisitFunctionDef(node *FunctionDef) {
	w.pass.Enter(node)
	w.visitHeader(node.Name, node.Formals, node.Locals)
	w.visit(node.Body)
	w.pass.Leave(node)
}

func (w *walker) VisitFormalArg(node *FormalArg) {
	w.pass.Enter(node)
	w.visit(node.Name)
	w.pass.Leave(node)
}

func (w *walker) VisitAssignment(node *Assignment) {
	w.pass.Enter(node)
	w.visit(node.Target)
	w.visit(node.Value)
	w.pass.Leave(node)
}

func (w *walker) VisitPrintStatement(node *PrintStatement) {
	w.pass.Enter(node)
	w.visitExpressions(node.Items)
	w.pass.Leave(node)
}

func (w *walker) VisitLoopStatement(node *LoopStatement) {
	w.pass.Enter(node)
	w.visitStatements(node.Body)
	w.visit(node.Condition)
	w.pass.Leave(node)
}

func (w *walker) VisitUnlessStatement(node *UnlessStatement) {
	w.pass.Enter(node)
	w.visitStatements(node.Body)
	w.visit(node.Condition)
	w.visitStatements(node.Otherwise)
	w.pass.Leave(node)
}

func (w *walker) VisitReturnStatement(node *ReturnStatement) {
	w.pass.Enter(node)
	w.visit(node.Value)
	w.pass.Leave(node)
}

func (w *walker) VisitUnlessExpression(node *UnlessExpression) {
	w.pass.Enter(node)
	w.visit(node.Then)
	w.visit(node.Condition)
	w.visit(node.Otherwise)
	w.pass.Leave(node)
}

func (w *walker) VisitBinaryExpression(node *BinaryExpression) {
	w.pass.Enter(node)
	w.visit(node.Left)
	w.visit(node.Right)
	w.pass.Leave(node)
}

func (w *walker) VisitIdentifier(node *Identifier) {
	w.pass.Enter(node)
	w.pass.Leave(node)
}

func (w *walker) VisitIntegerLiteral(node *IntegerLiteral) {
	w.pass.Enter(node)
	w.pass.Leave(node)
}

func (w *walker) VisitDateLiteral(node *DateLiteral) {
	w.pass.Enter(node)
	w.pass.Leave(node)
}

func (w *walker) VisitStringLiteral(node *StringLiteral) {
	w.pass.Enter(node)
	w.pass.Leave(node)
}

func (w *walker) VisitFunctionCall(node *FunctionCall) {
	w.pass.Enter(node)
	w.visit(node.Name)
	w.visitExpressions(node.Arguments)
	w.pass.Leave(node)
}

func (w *walker) VisitProcedureCall(node *ProcedureCall) {
	w.pass.Enter(node)
	w.visit(node.Name)
	w.visitExpressions(node.Arguments)
	w.pass.Leave(node)
}

func (w *walker) VisitAttrRead(node *AttrRead) {
	w.pass.Enter(node)
	w.visit(node.Target)
	w.pass.Leave(node)
}

func (w *walker) VisitAttrAssign(node *AttrAssign) {
	w.pass.Enter(node)
	w.visit(node.Target)
	w.pass.Leave(node)
}
