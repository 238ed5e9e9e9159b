package ast

import (
	"github.com/funvibe/datelang/internal/token"
)

// Assignment represents `target = value`.
type Assignment struct {
	Token  token.Token // The '=' token
	Target LValue      // *Identifier or *AttrAssign
	Value  Expression
}

func (a *Assignment) Kind() Kind            { return KindAssignment }
func (a *Assignment) Accept(v Visitor)      { v.VisitAssignment(a) }
func (a *Assignment) GetToken() token.Token { return a.Token }
func (a *Assignment) statementNode()        {}

// PrintStatement represents `print a & b & "c"`.
type PrintStatement struct {
	Token token.Token
	Items []Expression
}

func (ps *PrintStatement) Kind() Kind            { return KindPrintStatement }
func (ps *PrintStatement) Accept(v Visitor)      { v.VisitPrintStatement(ps) }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }
func (ps *PrintStatement) statementNode()        {}

// LoopStatement represents the post-condition loop `do stmts until cond`.
type LoopStatement struct {
	Token     token.Token // The 'do' token
	Body      []Statement
	Condition Expression
}

func (ls *LoopStatement) Kind() Kind            { return KindLoopStatement }
func (ls *LoopStatement) Accept(v Visitor)      { v.VisitLoopStatement(ls) }
func (ls *LoopStatement) GetToken() token.Token { return ls.Token }
func (ls *LoopStatement) statementNode()        {}

// UnlessStatement represents `do stmts unless cond [otherwise stmts] done`.
// Body runs when Condition is false.
type UnlessStatement struct {
	Token     token.Token // The 'do' token
	Body      []Statement
	Condition Expression
	Otherwise []Statement // nil when there is no otherwise branch
}

func (us *UnlessStatement) Kind() Kind            { return KindUnlessStatement }
func (us *UnlessStatement) Accept(v Visitor)      { v.VisitUnlessStatement(us) }
func (us *UnlessStatement) GetToken() token.Token { return us.Token }
func (us *UnlessStatement) statementNode()        {}

// ReturnStatement represents `return expr`.
type ReturnStatement struct {
	Token token.Token
	Value Expression
}

func (rs *ReturnStatement) Kind() Kind            { return KindReturnStatement }
func (rs *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }
func (rs *ReturnStatement) statementNode()        {}

// AttrAssign is the `d.month` target of an assignment.
type AttrAssign struct {
	Token  token.Token // The '.' token
	Target *Identifier
	Attr   string
}

func (aa *AttrAssign) Kind() Kind            { return KindAttrAssign }
func (aa *AttrAssign) Accept(v Visitor)      { v.VisitAttrAssign(aa) }
func (aa *AttrAssign) GetToken() token.Token { return aa.Token }
func (aa *AttrAssign) lvalueNode()           {}
