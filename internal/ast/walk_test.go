package ast

import (
	"strings"
	"testing"

	"github.com/funvibe/datelang/internal/token"
)

func id(name string, line int) *Identifier {
	return &Identifier{Token: token.AtLine(line), Value: name}
}

func num(v int64, line int) *IntegerLiteral {
	return &IntegerLiteral{Token: token.AtLine(line), Value: v}
}

// sample builds:
//
//	var d = 2020-01-01
//	procedure P {a[int]} var l = a is d.day = a + l end procedure
//	print d'day & "x"
func sample() *Program {
	return &Program{
		Definitions: []Definition{
			&VariableDef{Token: token.AtLine(1), Name: id("d", 1), Init: &DateLiteral{Token: token.AtLine(1), Year: 2020, Month: 1, Day: 1}},
			&ProcedureDef{
				Token:   token.AtLine(2),
				Name:    id("P", 2),
				Formals: []*FormalArg{{Token: token.AtLine(2), Name: id("a", 2), TypeName: "int"}},
				Locals:  []*VariableDef{{Token: token.AtLine(2), Name: id("l", 2), Init: id("a", 2)}},
				Body: []Statement{
					&Assignment{
						Token:  token.AtLine(2),
						Target: &AttrAssign{Token: token.AtLine(2), Target: id("d", 2), Attr: "day"},
						Value:  &BinaryExpression{Token: token.AtLine(2), Operator: OpPlus, Left: id("a", 2), Right: id("l", 2)},
					},
				},
			},
		},
		Statements: []Statement{
			&PrintStatement{Token: token.AtLine(3), Items: []Expression{
				&AttrRead{Token: token.AtLine(3), Target: id("d", 3), Attr: "day"},
				&StringLiteral{Token: token.AtLine(3), Value: "x"},
			}},
		},
	}
}

func TestWalkOrder(t *testing.T) {
	var trace []string
	Inspect(sample(), func(n Node) {
		trace = append(trace, "+"+n.Kind().String())
	}, func(n Node) {
		trace = append(trace, "-"+n.Kind().String())
	})

	want := []string{
		"+program",
		"+variable_def", "+id_name", "-id_name", "+date_literal", "-date_literal", "-variable_def",
		"+procedure_def", "+id_name", "-id_name",
		"+formal_arg", "+id_name", "-id_name", "-formal_arg",
		"+variable_def", "+id_name", "-id_name", "+id_name", "-id_name", "-variable_def",
		"+assignment", "+attr_assign", "+id_name", "-id_name", "-attr_assign",
		"+binary_op", "+id_name", "-id_name", "+id_name", "-id_name", "-binary_op", "-assignment",
		"-procedure_def",
		"+print_statement", "+attr_read", "+id_name", "-id_name", "-attr_read",
		"+string_literal", "-string_literal", "-print_statement",
		"-program",
	}
	if strings.Join(trace, " ") != strings.Join(want, " ") {
		t.Errorf("got:\n%s\nwant:\n%s", strings.Join(trace, " "), strings.Join(want, " "))
	}
}

func TestWalkSkipsNilChildren(t *testing.T) {
	var nilIdent *Identifier
	prog := &Program{Statements: []Statement{
		&ReturnStatement{Token: token.AtLine(1)},
		&Assignment{Token: token.AtLine(2), Target: nilIdent, Value: num(1, 2)},
	}}
	count := 0
	Inspect(prog, func(Node) { count++ }, nil)
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
}

func TestKindNames(t *testing.T) {
	for k := KindProgram; k <= KindAttrAssign; k++ {
		name := k.String()
		if name == "unknown" {
			t.Errorf("kind %d has no name", k)
			continue
		}
		back, ok := KindFromName(name)
		if !ok || back != k {
			t.Errorf("%s maps back to %d", name, back)
		}
	}
	if _, ok := KindFromName("lambda"); ok {
		t.Error("lambda is not a node kind")
	}
	if Kind(99).String() != "unknown" {
		t.Error("out of range kind")
	}
}

func TestLine(t *testing.T) {
	if Line(nil) != 0 {
		t.Error("nil node")
	}
	if Line(num(1, 7)) != 7 {
		t.Error("literal line")
	}
}
