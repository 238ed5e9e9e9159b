package ast

// Visitor has one method per node kind. Adding a kind means adding a method
// here, which breaks every implementation until it handles the new kind.
type Visitor interface {
	VisitProgram(node *Program)
	VisitVariableDef(node *VariableDef)
	VisitProcedureDef(node *ProcedureDef)
	VisitFunctionDef(node *FunctionDef)
	VisitFormalArg(node *FormalArg)
	VisitAssignment(node *Assignment)
	VisitPrintStatement(node *PrintStatement)
	VisitLoopStatement(node *LoopStatement)
	VisitUnlessStatement(node *UnlessStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitUnlessExpression(node *UnlessExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitIdentifier(node *Identifier)
	VisitIntegerLiteral(node *IntegerLiteral)
	VisitDateLiteral(node *DateLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitFunctionCall(node *FunctionCall)
	VisitProcedureCall(node *ProcedureCall)
	VisitAttrRead(node *AttrRead)
	VisitAttrAssign(node *AttrAssign)
}
