package evaluator

import (
	"fmt"

	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/object"
	"github.com/funvibe/datelang/internal/token"
	"github.com/funvibe/datelang/internal/typesystem"
)

const (
	ERROR_OBJ        object.ObjectType = "ERROR"
	RETURN_VALUE_OBJ object.ObjectType = "RETURN_VALUE"
)

// Error is a fatal evaluation failure. It travels up through Eval as an
// object and leaves the evaluator as an error; it is never one of the
// static diagnostics.
type Error struct {
	Message    string
	Line       int
	StackTrace []StackFrame
}

// StackFrame for error stack traces
type StackFrame struct {
	Name string // Callee
	Line int    // Line of the call site
}

func (e *Error) Type() object.ObjectType      { return ERROR_OBJ }
func (e *Error) RuntimeType() typesystem.Type { return typesystem.Unknown }

func (e *Error) Inspect() string {
	var result string
	if e.Line > 0 {
		result = fmt.Sprintf("ERROR at line %d: %s", e.Line, e.Message)
	} else {
		result = "ERROR: " + e.Message
	}

	// Innermost call first
	if len(e.StackTrace) > 0 {
		result += "\nStack trace:"
		for i := len(e.StackTrace) - 1; i >= 0; i-- {
			frame := e.StackTrace[i]
			result += fmt.Sprintf("\n  at line %d (called %s)", frame.Line, frame.Name)
		}
	}
	return result
}

func (e *Error) Error() string {
	return e.Inspect()
}

// Diagnostic converts the error into an R001 report for display next to
// static diagnostics.
func (e *Error) Diagnostic(file string) *diagnostics.DiagnosticError {
	msg := e.Message
	for i := len(e.StackTrace) - 1; i >= 0; i-- {
		frame := e.StackTrace[i]
		msg += fmt.Sprintf("\n  at %s:%d (called %s)", file, frame.Line, frame.Name)
	}
	d := diagnostics.NewError(diagnostics.ErrR001, token.AtLine(e.Line), msg)
	d.File = file
	return d
}

// ReturnValue carries the value of a return statement up to the enclosing
// call.
type ReturnValue struct {
	Value object.Object
}

func (rv *ReturnValue) Type() object.ObjectType      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string              { return rv.Value.Inspect() }
func (rv *ReturnValue) RuntimeType() typesystem.Type { return rv.Value.RuntimeType() }
