package astload

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
	"github.com/funvibe/datelang/internal/token"
)

type decoder struct{}

func errorf(line int, format string, args ...interface{}) error {
	return &DecodeError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func tokAt(line int, lexeme string) token.Token {
	tok := token.AtLine(line)
	tok.Lexeme = lexeme
	return tok
}

// inherit fills in a missing line from the parent.
func inherit(raw *rawNode, parentLine int) {
	if raw != nil && raw.Line == 0 {
		raw.Line = parentLine
	}
}

func (d *decoder) program(raw *rawNode) (*ast.Program, error) {
	if raw.Kind != "" && raw.Kind != ast.KindProgram.String() {
		return nil, errorf(raw.Line, "root node must be %s, got %q", ast.KindProgram, raw.Kind)
	}
	if raw.Line == 0 {
		raw.Line = 1
	}
	prog := &ast.Program{Token: tokAt(raw.Line, "")}
	for _, r := range raw.Definitions {
		def, err := d.definition(r, raw.Line)
		if err != nil {
			return nil, err
		}
		prog.Definitions = append(prog.Definitions, def)
	}
	stmts, err := d.statements(raw.Statements, raw.Line)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, errorf(raw.Line, "program has no statements")
	}
	prog.Statements = stmts
	return prog, nil
}

func (d *decoder) definition(raw *rawNode, parentLine int) (ast.Definition, error) {
	node, err := d.node(raw, parentLine)
	if err != nil {
		return nil, err
	}
	def, ok := node.(ast.Definition)
	if !ok {
		return nil, errorf(raw.Line, "%s is not a definition", node.Kind())
	}
	return def, nil
}

func (d *decoder) statement(raw *rawNode, parentLine int) (ast.Statement, error) {
	node, err := d.node(raw, parentLine)
	if err != nil {
		return nil, err
	}
	stmt, ok := node.(ast.Statement)
	if !ok {
		return nil, errorf(raw.Line, "%s is not a statement", node.Kind())
	}
	return stmt, nil
}

func (d *decoder) statements(raws []*rawNode, parentLine int) ([]ast.Statement, error) {
	stmts := make([]ast.Statement, 0, len(raws))
	for _, r := range raws {
		stmt, err := d.statement(r, parentLine)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (d *decoder) expression(raw *rawNode, parentLine int, field string) (ast.Expression, error) {
	if raw == nil {
		return nil, errorf(parentLine, "missing %s", field)
	}
	node, err := d.node(raw, parentLine)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expression)
	if !ok {
		return nil, errorf(raw.Line, "%s is not an expression (in %s)", node.Kind(), field)
	}
	return expr, nil
}

func (d *decoder) expressions(raws []*rawNode, parentLine int, field string) ([]ast.Expression, error) {
	exprs := make([]ast.Expression, 0, len(raws))
	for _, r := range raws {
		expr, err := d.expression(r, parentLine, field)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// yamlNode decodes a field that holds a single child mapping.
func (d *decoder) yamlNode(n *yaml.Node, parentLine int, field string) (ast.Expression, error) {
	if n.Kind == 0 {
		return nil, errorf(parentLine, "missing %s", field)
	}
	if n.Kind != yaml.MappingNode {
		return nil, errorf(parentLine, "%s must be a node", field)
	}
	var raw rawNode
	if err := n.Decode(&raw); err != nil {
		return nil, errorf(parentLine, "%s: %v", field, err)
	}
	return d.expression(&raw, parentLine, field)
}

// yamlList decodes a field that holds a statement list. A missing field is
// an empty list.
func (d *decoder) yamlList(n *yaml.Node, parentLine int, field string) ([]ast.Statement, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(parentLine, "%s must be a list", field)
	}
	var raws []*rawNode
	if err := n.Decode(&raws); err != nil {
		return nil, errorf(parentLine, "%s: %v", field, err)
	}
	return d.statements(raws, parentLine)
}

func (d *decoder) identifier(name string, line int, field string) (*ast.Identifier, error) {
	if name == "" {
		return nil, errorf(line, "missing %s", field)
	}
	return &ast.Identifier{Token: tokAt(line, name), Value: name}, nil
}

func (d *decoder) node(raw *rawNode, parentLine int) (ast.Node, error) {
	if raw == nil {
		return nil, errorf(parentLine, "null node")
	}
	inherit(raw, parentLine)
	line := raw.Line

	kind, ok := ast.KindFromName(raw.Kind)
	if !ok {
		return nil, errorf(line, "unknown node kind %q", raw.Kind)
	}

	switch kind {
	case ast.KindVariableDef:
		return d.variableDef(raw)

	case ast.KindProcedureDef:
		name, err := d.identifier(raw.Name, line, "procedure name")
		if err != nil {
			return nil, err
		}
		def := &ast.ProcedureDef{Token: tokAt(line, "procedure"), Name: name, ReturnType: raw.ReturnType}
		if raw.ReturnType != "" {
			def.ReturnToken = tokAt(line, raw.ReturnType)
		}
		if def.Formals, err = d.formals(raw.Formals, line); err != nil {
			return nil, err
		}
		if def.Locals, err = d.locals(raw.Locals, line); err != nil {
			return nil, err
		}
		if def.Body, err = d.yamlList(&raw.Body, line, "body"); err != nil {
			return nil, err
		}
		if len(def.Body) == 0 {
			return nil, errorf(line, "procedure %s has an empty body", raw.Name)
		}
		return def, nil

	case ast.KindFunctionDef:
		name, err := d.identifier(raw.Name, line, "function name")
		if err != nil {
			return nil, err
		}
		def := &ast.FunctionDef{Token: tokAt(line, "function"), Name: name, ReturnType: raw.ReturnType}
		if raw.ReturnType != "" {
			def.ReturnToken = tokAt(line, raw.ReturnType)
		}
		if def.Formals, err = d.formals(raw.Formals, line); err != nil {
			return nil, err
		}
		if def.Locals, err = d.locals(raw.Locals, line); err != nil {
			return nil, err
		}
		if def.Body, err = d.yamlNode(&raw.Body, line, "body"); err != nil {
			return nil, err
		}
		return def, nil

	case ast.KindFormalArg:
		return d.formal(raw)

	case ast.KindAssignment:
		if raw.Target == nil {
			return nil, errorf(line, "missing target")
		}
		targetNode, err := d.node(raw.Target, line)
		if err != nil {
			return nil, err
		}
		target, ok := targetNode.(ast.LValue)
		if !ok {
			return nil, errorf(raw.Target.Line, "%s cannot be assigned to", targetNode.Kind())
		}
		value, err := d.yamlNode(&raw.Value, line, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Token: tokAt(line, "="), Target: target, Value: value}, nil

	case ast.KindPrintStatement:
		if len(raw.Items) == 0 {
			return nil, errorf(line, "print statement without items")
		}
		items, err := d.expressions(raw.Items, line, "items")
		if err != nil {
			return nil, err
		}
		return &ast.PrintStatement{Token: tokAt(line, "print"), Items: items}, nil

	case ast.KindLoopStatement:
		body, err := d.yamlList(&raw.Body, line, "body")
		if err != nil {
			return nil, err
		}
		cond, err := d.expression(raw.Cond, line, "cond")
		if err != nil {
			return nil, err
		}
		return &ast.LoopStatement{Token: tokAt(line, "do"), Body: body, Condition: cond}, nil

	case ast.KindUnlessStatement:
		body, err := d.yamlList(&raw.Body, line, "body")
		if err != nil {
			return nil, err
		}
		cond, err := d.expression(raw.Cond, line, "cond")
		if err != nil {
			return nil, err
		}
		otherwise, err := d.yamlList(&raw.Otherwise, line, "otherwise")
		if err != nil {
			return nil, err
		}
		return &ast.UnlessStatement{Token: tokAt(line, "do"), Body: body, Condition: cond, Otherwise: otherwise}, nil

	case ast.KindReturnStatement:
		value, err := d.yamlNode(&raw.Value, line, "value")
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Token: tokAt(line, "return"), Value: value}, nil

	case ast.KindUnlessExpression:
		then, err := d.expression(raw.Then, line, "then")
		if err != nil {
			return nil, err
		}
		cond, err := d.expression(raw.Cond, line, "cond")
		if err != nil {
			return nil, err
		}
		otherwise, err := d.yamlNode(&raw.Otherwise, line, "otherwise")
		if err != nil {
			return nil, err
		}
		return &ast.UnlessExpression{Token: tokAt(line, "do"), Then: then, Condition: cond, Otherwise: otherwise}, nil

	case ast.KindBinaryOp:
		if !ast.IsOperator(raw.Op) {
			return nil, errorf(line, "unknown operator %q", raw.Op)
		}
		left, err := d.expression(raw.Left, line, "left")
		if err != nil {
			return nil, err
		}
		right, err := d.expression(raw.Right, line, "right")
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Token: tokAt(line, raw.Op), Operator: raw.Op, Left: left, Right: right}, nil

	case ast.KindIdentifier:
		return d.identifier(raw.Name, line, "name")

	case ast.KindIntLiteral:
		if raw.Value.Kind != yaml.ScalarNode {
			return nil, errorf(line, "int_literal needs a scalar value")
		}
		v, err := strconv.ParseInt(raw.Value.Value, 10, 64)
		if err != nil {
			return nil, errorf(line, "bad int_literal %q", raw.Value.Value)
		}
		return &ast.IntegerLiteral{Token: tokAt(line, raw.Value.Value), Value: v}, nil

	case ast.KindDateLiteral:
		return d.dateLiteral(raw)

	case ast.KindStringLiteral:
		if raw.Value.Kind != yaml.ScalarNode {
			return nil, errorf(line, "string_literal needs a scalar value")
		}
		return &ast.StringLiteral{Token: tokAt(line, raw.Value.Value), Value: raw.Value.Value}, nil

	case ast.KindFunctionCall, ast.KindProcedureCall:
		name, err := d.identifier(raw.Name, line, "callee name")
		if err != nil {
			return nil, err
		}
		args, err := d.expressions(raw.Args, line, "args")
		if err != nil {
			return nil, err
		}
		if kind == ast.KindFunctionCall {
			return &ast.FunctionCall{Token: tokAt(line, raw.Name), Name: name, Arguments: args}, nil
		}
		return &ast.ProcedureCall{Token: tokAt(line, raw.Name), Name: name, Arguments: args}, nil

	case ast.KindAttrRead, ast.KindAttrAssign:
		target, err := d.identifier(raw.Name, line, "name")
		if err != nil {
			return nil, err
		}
		if raw.Attr == "" {
			return nil, errorf(line, "missing attr")
		}
		if kind == ast.KindAttrRead {
			return &ast.AttrRead{Token: tokAt(line, "'"), Target: target, Attr: raw.Attr}, nil
		}
		return &ast.AttrAssign{Token: tokAt(line, "."), Target: target, Attr: raw.Attr}, nil
	}

	return nil, errorf(line, "%s cannot appear here", kind)
}

func (d *decoder) variableDef(raw *rawNode) (*ast.VariableDef, error) {
	name, err := d.identifier(raw.Name, raw.Line, "variable name")
	if err != nil {
		return nil, err
	}
	init, err := d.expression(raw.Init, raw.Line, "init")
	if err != nil {
		return nil, err
	}
	return &ast.VariableDef{Token: tokAt(raw.Line, "var"), Name: name, Init: init}, nil
}

func (d *decoder) formal(raw *rawNode) (*ast.FormalArg, error) {
	name, err := d.identifier(raw.Name, raw.Line, "formal name")
	if err != nil {
		return nil, err
	}
	if raw.Type == "" {
		return nil, errorf(raw.Line, "formal %s has no type", raw.Name)
	}
	return &ast.FormalArg{Token: tokAt(raw.Line, raw.Name), Name: name, TypeName: raw.Type}, nil
}

func (d *decoder) formals(raws []*rawNode, parentLine int) ([]*ast.FormalArg, error) {
	var out []*ast.FormalArg
	for _, r := range raws {
		if r == nil || r.Kind != ast.KindFormalArg.String() {
			return nil, errorf(parentLine, "formals must be %s nodes", ast.KindFormalArg)
		}
		inherit(r, parentLine)
		f, err := d.formal(r)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (d *decoder) locals(raws []*rawNode, parentLine int) ([]*ast.VariableDef, error) {
	var out []*ast.VariableDef
	for _, r := range raws {
		if r == nil || r.Kind != ast.KindVariableDef.String() {
			return nil, errorf(parentLine, "locals must be %s nodes", ast.KindVariableDef)
		}
		inherit(r, parentLine)
		v, err := d.variableDef(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d *decoder) dateLiteral(raw *rawNode) (*ast.DateLiteral, error) {
	var year, month, day int
	text := raw.Value.Value
	if raw.Value.Kind != yaml.ScalarNode || len(text) != 10 {
		return nil, errorf(raw.Line, "date_literal needs a YYYY-MM-DD value")
	}
	if _, err := fmt.Sscanf(text, "%4d-%2d-%2d", &year, &month, &day); err != nil {
		return nil, errorf(raw.Line, "bad date_literal %q", text)
	}
	if _, err := object.NewDate(year, month, day); err != nil {
		return nil, errorf(raw.Line, "%v", err)
	}
	return &ast.DateLiteral{Token: tokAt(raw.Line, text), Year: year, Month: month, Day: day}, nil
}
