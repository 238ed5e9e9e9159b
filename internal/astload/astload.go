// Package astload decodes YAML AST documents produced by external parsers
// into *ast.Program.
//
// Every node is a mapping with a `kind` (the node-kind name, e.g.
// `variable_def`), an optional `line` (inherited from the parent when
// missing) and kind-specific fields:
//
//	kind: program
//	definitions:
//	  - {kind: variable_def, line: 1, name: x, init: {kind: int_literal, value: 3}}
//	statements:
//	  - kind: print_statement
//	    line: 2
//	    items:
//	      - {kind: binary_op, op: "+", left: {kind: id_name, name: x}, right: {kind: int_literal, value: 4}}
package astload

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/datelang/internal/ast"
)

// DecodeError reports a malformed document.
type DecodeError struct {
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type rawNode struct {
	Kind        string     `yaml:"kind"`
	Line        int        `yaml:"line"`
	Name        string     `yaml:"name"`
	Op          string     `yaml:"op"`
	Type        string     `yaml:"type"`
	ReturnType  string     `yaml:"return_type"`
	Attr        string     `yaml:"attr"`
	Value       yaml.Node  `yaml:"value"`
	Target      *rawNode   `yaml:"target"`
	Init        *rawNode   `yaml:"init"`
	Left        *rawNode   `yaml:"left"`
	Right       *rawNode   `yaml:"right"`
	Cond        *rawNode   `yaml:"cond"`
	Then        *rawNode   `yaml:"then"`
	Otherwise   yaml.Node  `yaml:"otherwise"` // list for statements, node for expressions
	Body        yaml.Node  `yaml:"body"`      // list for procedures and blocks, node for functions
	Items       []*rawNode `yaml:"items"`
	Args        []*rawNode `yaml:"args"`
	Formals     []*rawNode `yaml:"formals"`
	Locals      []*rawNode `yaml:"locals"`
	Definitions []*rawNode `yaml:"definitions"`
	Statements  []*rawNode `yaml:"statements"`
}

// Decode parses a YAML AST document.
func Decode(data []byte) (*ast.Program, error) {
	var root rawNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &DecodeError{Line: yamlErrorLine(err), Msg: err.Error()}
	}
	if root.Kind == "" && root.Line == 0 && len(root.Statements) == 0 {
		return nil, &DecodeError{Line: 1, Msg: "empty AST document"}
	}
	d := &decoder{}
	return d.program(&root)
}

// Load reads and decodes a YAML AST file.
func Load(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading AST document: %w", err)
	}
	prog, err := Decode(data)
	if err != nil {
		return nil, err
	}
	prog.File = path
	return prog, nil
}

// yaml.v3 reports syntax errors as "yaml: line N: ...".
func yamlErrorLine(err error) int {
	var line int
	msg := err.Error()
	if i := strings.Index(msg, "line "); i >= 0 {
		fmt.Sscanf(msg[i:], "line %d", &line)
	}
	if line == 0 {
		line = 1
	}
	return line
}
