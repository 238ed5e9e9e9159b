package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/datelang/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter). All operators are
// left-associative.
var operatorPrecedence = map[string]int{
	ast.OpEq:    1,
	ast.OpLess:  1,
	ast.OpPlus:  2,
	ast.OpMinus: 2,
	ast.OpMul:   3,
	ast.OpDiv:   3,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

// CodePrinter renders an AST back to datelang source. Parsing its output
// yields the same tree.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Format renders prog as source text.
func Format(prog *ast.Program) string {
	p := NewCodePrinter()
	prog.Accept(p)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) accept(n ast.Node) {
	if n == nil {
		p.write("<???>")
		return
	}
	n.Accept(p)
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	e, ok := expr.(*ast.BinaryExpression)
	if !ok || e == nil {
		p.accept(expr)
		return
	}
	prec := getPrecedence(e.Operator)
	needParens := prec < parentPrec || (prec == parentPrec && isRight)
	if needParens {
		p.write("(")
	}
	p.printExpr(e.Left, prec, false)
	p.write(" " + e.Operator + " ")
	p.printExpr(e.Right, prec, true)
	if needParens {
		p.write(")")
	}
}

// printBlock writes statements one per line, comma separated, one level
// deeper than the current indentation.
func (p *CodePrinter) printBlock(stmts []ast.Statement) {
	p.indent++
	for i, stmt := range stmts {
		p.writeIndent()
		p.accept(stmt)
		if i < len(stmts)-1 {
			p.write(",")
		}
		p.writeln()
	}
	p.indent--
}

func (p *CodePrinter) printFormals(formals []*ast.FormalArg) {
	p.write(" {")
	for i, f := range formals {
		if i > 0 {
			p.write(", ")
		}
		p.accept(f)
	}
	p.write("}")
}

func (p *CodePrinter) printLocals(locals []*ast.VariableDef) {
	for _, vd := range locals {
		p.accept(vd)
		p.writeln()
	}
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for _, def := range n.Definitions {
		p.accept(def)
		p.writeln()
		if _, isVar := def.(*ast.VariableDef); !isVar {
			p.writeln()
		}
	}
	for i, stmt := range n.Statements {
		p.accept(stmt)
		if i < len(n.Statements)-1 {
			p.write(",")
		}
		p.writeln()
	}
}

func (p *CodePrinter) VisitVariableDef(n *ast.VariableDef) {
	p.write("var ")
	p.accept(n.Name)
	p.write(" = ")
	p.printExpr(n.Init, 0, false)
}

func (p *CodePrinter) VisitProcedureDef(n *ast.ProcedureDef) {
	p.write("procedure ")
	p.accept(n.Name)
	p.printFormals(n.Formals)
	if n.ReturnType != "" {
		p.write(" return " + n.ReturnType)
	}
	p.writeln()
	p.printLocals(n.Locals)
	p.write("is")
	p.writeln()
	p.printBlock(n.Body)
	p.write("end procedure")
}

func (p *CodePrinter) VisitFunctionDef(n *ast.FunctionDef) {
	p.write("function ")
	p.accept(n.Name)
	p.printFormals(n.Formals)
	p.write(" return " + n.ReturnType)
	p.writeln()
	p.printLocals(n.Locals)
	p.write("is")
	p.writeln()
	p.indent++
	p.writeIndent()
	p.printExpr(n.Body, 0, false)
	p.indent--
	p.writeln()
	p.write("end function")
}

func (p *CodePrinter) VisitFormalArg(n *ast.FormalArg) {
	p.accept(n.Name)
	p.write("[" + n.TypeName + "]")
}

func (p *CodePrinter) VisitAssignment(n *ast.Assignment) {
	p.accept(n.Target)
	p.write(" = ")
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitPrintStatement(n *ast.PrintStatement) {
	p.write("print ")
	for i, item := range n.Items {
		if i > 0 {
			p.write(" & ")
		}
		p.printExpr(item, 0, false)
	}
}

func (p *CodePrinter) VisitLoopStatement(n *ast.LoopStatement) {
	p.write("do")
	p.writeln()
	p.printBlock(n.Body)
	p.writeIndent()
	p.write("until ")
	p.printExpr(n.Condition, 0, false)
}

func (p *CodePrinter) VisitUnlessStatement(n *ast.UnlessStatement) {
	p.write("do")
	p.writeln()
	p.printBlock(n.Body)
	p.writeIndent()
	p.write("unless ")
	p.printExpr(n.Condition, 0, false)
	p.writeln()
	if n.Otherwise != nil {
		p.writeIndent()
		p.write("otherwise")
		p.writeln()
		p.printBlock(n.Otherwise)
	}
	p.writeIndent()
	p.write("done")
}

func (p *CodePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.write("return ")
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitUnlessExpression(n *ast.UnlessExpression) {
	p.write("do ")
	p.printExpr(n.Then, 0, false)
	p.write(" unless ")
	p.printExpr(n.Condition, 0, false)
	p.write(" otherwise ")
	p.printExpr(n.Otherwise, 0, false)
	p.write(" done")
}

func (p *CodePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.write(strconv.FormatInt(n.Value, 10))
}

func (p *CodePrinter) VisitDateLiteral(n *ast.DateLiteral) {
	p.write(fmt.Sprintf("%04d-%02d-%02d", n.Year, n.Month, n.Day))
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(`"` + n.Value + `"`)
}

func (p *CodePrinter) VisitFunctionCall(n *ast.FunctionCall) {
	p.accept(n.Name)
	p.printArguments(n.Arguments)
}

func (p *CodePrinter) VisitProcedureCall(n *ast.ProcedureCall) {
	p.accept(n.Name)
	p.printArguments(n.Arguments)
}

func (p *CodePrinter) printArguments(args []ast.Expression) {
	parts := make([]string, len(args))
	for i, arg := range args {
		sub := NewCodePrinter()
		sub.printExpr(arg, 0, false)
		parts[i] = sub.String()
	}
	p.write("(" + strings.Join(parts, ", ") + ")")
}

func (p *CodePrinter) VisitAttrRead(n *ast.AttrRead) {
	p.accept(n.Target)
	p.write("'" + n.Attr)
}

func (p *CodePrinter) VisitAttrAssign(n *ast.AttrAssign) {
	p.accept(n.Target)
	p.write("." + n.Attr)
}
