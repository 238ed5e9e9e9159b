// Package object holds the runtime values of datelang: integers, dates and
// print-only strings.
package object

import (
	"fmt"

	"github.com/funvibe/datelang/internal/typesystem"
)

type ObjectType string

const (
	INTEGER_OBJ ObjectType = "INTEGER"
	DATE_OBJ    ObjectType = "DATE"
	STRING_OBJ  ObjectType = "STRING"
)

type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() typesystem.Type
}

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType             { return INTEGER_OBJ }
func (i *Integer) Inspect() string              { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) RuntimeType() typesystem.Type { return typesystem.Int }

// String is only ever produced by string literals inside print statements.
type String struct {
	Value string
}

func (s *String) Type() ObjectType             { return STRING_OBJ }
func (s *String) Inspect() string              { return s.Value }
func (s *String) RuntimeType() typesystem.Type { return typesystem.String }

var (
	True  = &Integer{Value: 1}
	False = &Integer{Value: 0}
)

// FromBool maps a comparison result onto the integer truth values.
func FromBool(b bool) *Integer {
	if b {
		return True
	}
	return False
}

// Truthy reports whether obj is a true condition: a non-zero integer.
func Truthy(obj Object) bool {
	if i, ok := obj.(*Integer); ok {
		return i.Value != 0
	}
	return false
}
