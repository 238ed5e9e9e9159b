package ast

import (
	"github.com/funvibe/datelang/internal/token"
)

// SymbolID is a handle into the symbol arena. The zero value means the node
// has not been bound to a symbol (yet).
type SymbolID int

const NoSymbol SymbolID = 0

// Kind identifies the node variant. Its string form is the node-kind name
// used in diagnostics and AST documents.
type Kind int

const (
	KindProgram Kind = iota
	KindVariableDef
	KindProcedureDef
	KindFunctionDef
	KindFormalArg
	KindAssignment
	KindPrintStatement
	KindLoopStatement
	KindUnlessStatement
	KindReturnStatement
	KindUnlessExpression
	KindBinaryOp
	KindIdentifier
	KindIntLiteral
	KindDateLiteral
	KindStringLiteral
	KindFunctionCall
	KindProcedureCall
	KindAttrRead
	KindAttrAssign
)

var kindNames = [...]string{
	KindProgram:          "program",
	KindVariableDef:      "variable_def",
	KindProcedureDef:     "procedure_def",
	KindFunctionDef:      "function_def",
	KindFormalArg:        "formal_arg",
	KindAssignment:       "assignment",
	KindPrintStatement:   "print_statement",
	KindLoopStatement:    "loop_statement",
	KindUnlessStatement:  "unless_statement",
	KindReturnStatement:  "return_statement",
	KindUnlessExpression: "unless_expression",
	KindBinaryOp:         "binary_op",
	KindIdentifier:       "id_name",
	KindIntLiteral:       "int_literal",
	KindDateLiteral:      "date_literal",
	KindStringLiteral:    "string_literal",
	KindFunctionCall:     "function_call",
	KindProcedureCall:    "procedure_call",
	KindAttrRead:         "attr_read",
	KindAttrAssign:       "attr_assign",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromName is the inverse of Kind.String.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Node is the base interface for all AST nodes.
type Node interface {
	Kind() Kind
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node that can appear in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Definition is a Node that introduces a top-level name.
type Definition interface {
	Node
	definitionNode()
	DefinedName() *Identifier
}

// LValue is the left side of an assignment: a plain variable or a date
// attribute.
type LValue interface {
	Node
	lvalueNode()
}

// Line returns the source line of n, or 0 for nil.
func Line(n Node) int {
	if n == nil {
		return 0
	}
	return n.GetToken().Line
}

// Program is the root node of every AST.
type Program struct {
	Token       token.Token
	File        string // Source file path, if any
	Definitions []Definition
	Statements  []Statement
}

func (p *Program) Kind() Kind            { return KindProgram }
func (p *Program) Accept(v Visitor)      { v.VisitProgram(p) }
func (p *Program) GetToken() token.Token { return p.Token }

// VariableDef represents `var name = init`, at top level or as a local of a
// procedure/function.
type VariableDef struct {
	Token  token.Token // The 'var' token
	Name   *Identifier
	Init   Expression
	Symbol SymbolID // Own entry, set by the symbol builder
}

func (vd *VariableDef) Kind() Kind               { return KindVariableDef }
func (vd *VariableDef) Accept(v Visitor)         { v.VisitVariableDef(vd) }
func (vd *VariableDef) GetToken() token.Token    { return vd.Token }
func (vd *VariableDef) definitionNode()          {}
func (vd *VariableDef) DefinedName() *Identifier { return vd.Name }

// ProcedureDef represents
// procedure Name{formals} [return type] locals is statements end procedure
type ProcedureDef struct {
	Token       token.Token // The 'procedure' token
	Name        *Identifier
	Formals     []*FormalArg
	ReturnType  string      // Empty when the procedure declares none
	ReturnToken token.Token // Position of the return type, if any
	Locals      []*VariableDef
	Body        []Statement
	Symbol      SymbolID
}

func (pd *ProcedureDef) Kind() Kind               { return KindProcedureDef }
func (pd *ProcedureDef) Accept(v Visitor)         { v.VisitProcedureDef(pd) }
func (pd *ProcedureDef) GetToken() token.Token    { return pd.Token }
func (pd *ProcedureDef) definitionNode()          {}
func (pd *ProcedureDef) DefinedName() *Identifier { return pd.Name }

// FunctionDef represents
// function NAME{formals} return type locals is rvalue end function
type FunctionDef struct {
	Token       token.Token // The 'function' token
	Name        *Identifier
	Formals     []*FormalArg
	ReturnType  string
	ReturnToken token.Token
	Locals      []*VariableDef
	Body        Expression
	Symbol      SymbolID
}

func (fd *FunctionDef) Kind() Kind               { return KindFunctionDef }
func (fd *FunctionDef) Accept(v Visitor)         { v.VisitFunctionDef(fd) }
func (fd *FunctionDef) GetToken() token.Token    { return fd.Token }
func (fd *FunctionDef) definitionNode()          {}
func (fd *FunctionDef) DefinedName() *Identifier { return fd.Name }

// FormalArg represents `name[type]` in a parameter list. Name is a
// declaration target, not a use.
type FormalArg struct {
	Token    token.Token
	Name     *Identifier
	TypeName string
	Symbol   SymbolID
}

func (fa *FormalArg) Kind() Kind            { return KindFormalArg }
func (fa *FormalArg) Accept(v Visitor)      { v.VisitFormalArg(fa) }
func (fa *FormalArg) GetToken() token.Token { return fa.Token }
