package ast

import (
	"github.com/funvibe/datelang/internal/token"
)

// Binary operators
const (
	OpPlus  = "+"
	OpMinus = "-"
	OpMul   = "*"
	OpDiv   = "/"
	OpEq    = "="
	OpLess  = "<"
)

// IsOperator reports whether op is one of the binary operators.
func IsOperator(op string) bool {
	switch op {
	case OpPlus, OpMinus, OpMul, OpDiv, OpEq, OpLess:
		return true
	}
	return false
}

// Identifier represents a use of a name (or, inside VariableDef, FormalArg
// and the definitions, the declared name itself).
type Identifier struct {
	Token  token.Token
	Value  string
	Symbol SymbolID // Set by the resolver
}

func (i *Identifier) Kind() Kind            { return KindIdentifier }
func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) lvalueNode()           {}

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Kind() Kind            { return KindIntLiteral }
func (il *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) expressionNode()       {}

// DateLiteral represents YYYY-MM-DD.
type DateLiteral struct {
	Token token.Token
	Year  int
	Month int
	Day   int
}

func (dl *DateLiteral) Kind() Kind            { return KindDateLiteral }
func (dl *DateLiteral) Accept(v Visitor)      { v.VisitDateLiteral(dl) }
func (dl *DateLiteral) GetToken() token.Token { return dl.Token }
func (dl *DateLiteral) expressionNode()       {}

// StringLiteral is only valid as a print item.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Kind() Kind            { return KindStringLiteral }
func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) expressionNode()       {}

// BinaryExpression represents `left op right` for op in + - * / = <.
type BinaryExpression struct {
	Token    token.Token // The operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) Kind() Kind            { return KindBinaryOp }
func (be *BinaryExpression) Accept(v Visitor)      { v.VisitBinaryExpression(be) }
func (be *BinaryExpression) GetToken() token.Token { return be.Token }
func (be *BinaryExpression) expressionNode()       {}

// UnlessExpression represents `do then unless cond otherwise other done`.
// Then is the value when Condition is false.
type UnlessExpression struct {
	Token     token.Token // The 'do' token
	Then      Expression
	Condition Expression
	Otherwise Expression
}

func (ue *UnlessExpression) Kind() Kind            { return KindUnlessExpression }
func (ue *UnlessExpression) Accept(v Visitor)      { v.VisitUnlessExpression(ue) }
func (ue *UnlessExpression) GetToken() token.Token { return ue.Token }
func (ue *UnlessExpression) expressionNode()       {}

// FunctionCall represents NAME(args).
type FunctionCall struct {
	Token     token.Token
	Name      *Identifier
	Arguments []Expression
}

func (fc *FunctionCall) Kind() Kind            { return KindFunctionCall }
func (fc *FunctionCall) Accept(v Visitor)      { v.VisitFunctionCall(fc) }
func (fc *FunctionCall) GetToken() token.Token { return fc.Token }
func (fc *FunctionCall) expressionNode()       {}

// ProcedureCall represents Name(args), either as a statement or, for
// procedures that return a value, inside an expression.
type ProcedureCall struct {
	Token     token.Token
	Name      *Identifier
	Arguments []Expression
}

func (pc *ProcedureCall) Kind() Kind            { return KindProcedureCall }
func (pc *ProcedureCall) Accept(v Visitor)      { v.VisitProcedureCall(pc) }
func (pc *ProcedureCall) GetToken() token.Token { return pc.Token }
func (pc *ProcedureCall) expressionNode()       {}
func (pc *ProcedureCall) statementNode()        {}

// AttrRead represents d'attr.
type AttrRead struct {
	Token  token.Token // The apostrophe token
	Target *Identifier
	Attr   string
}

func (ar *AttrRead) Kind() Kind            { return KindAttrRead }
func (ar *AttrRead) Accept(v Visitor)      { v.VisitAttrRead(ar) }
func (ar *AttrRead) GetToken() token.Token { return ar.Token }
func (ar *AttrRead) expressionNode()       {}
