package analyzer

import (
	"go.uber.org/zap"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/symbols"
)

// Check is one verifier pass: a two-phase traversal with its own state that
// reports diagnostics as values.
type Check interface {
	ast.Pass
	Diagnostics() []*diagnostics.DiagnosticError
}

// Checks returns fresh instances of every verifier pass. The passes are
// independent of each other; all of them need the resolver to have run.
func Checks(table *symbols.SymbolTable) []Check {
	return []Check{
		NewCallCheck(table),
		NewNestingCheck(),
		NewDateLiteralCheck(),
		NewAttributeCheck(),
		NewReturnCheck(),
	}
}

// Analyzer performs semantic analysis on the AST: symbol table construction,
// reference resolution and the verifier passes.
type Analyzer struct {
	symbolTable *symbols.SymbolTable
	// FailFast stops after the first stage that reported diagnostics.
	FailFast bool
	Logger   *zap.Logger
}

// New creates a new Analyzer with a given symbol table.
func New(symbolTable *symbols.SymbolTable) *Analyzer {
	return &Analyzer{symbolTable: symbolTable, Logger: zap.NewNop()}
}

// Analyze runs every stage and returns the diagnostics ordered by line.
func (a *Analyzer) Analyze(prog *ast.Program) []*diagnostics.DiagnosticError {
	var errs []*diagnostics.DiagnosticError

	stage := func(name string, found []*diagnostics.DiagnosticError) bool {
		a.Logger.Debug("analysis stage", zap.String("stage", name), zap.Int("diagnostics", len(found)))
		errs = append(errs, found...)
		return a.FailFast && len(found) > 0
	}

	if stage("symbols", BuildSymbols(prog, a.symbolTable)) {
		return sorted(errs)
	}
	if stage("resolve", Resolve(prog, a.symbolTable)) {
		return sorted(errs)
	}
	for _, check := range Checks(a.symbolTable) {
		ast.Walk(check, prog)
		if stage(checkName(check), check.Diagnostics()) {
			break
		}
	}
	return sorted(errs)
}

func sorted(errs []*diagnostics.DiagnosticError) []*diagnostics.DiagnosticError {
	diagnostics.Sort(errs)
	return errs
}

func checkName(c Check) string {
	switch c.(type) {
	case *CallCheck:
		return "calls"
	case *NestingCheck:
		return "nesting"
	case *DateLiteralCheck:
		return "date-literals"
	case *AttributeCheck:
		return "attributes"
	case *ReturnCheck:
		return "returns"
	}
	return "check"
}
