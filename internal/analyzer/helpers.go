package analyzer

import (
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/token"
)

// collector accumulates the diagnostics of one pass.
type collector struct {
	errs []*diagnostics.DiagnosticError
}

func (c *collector) report(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	c.errs = append(c.errs, diagnostics.NewErrorf(code, tok, format, args...))
}

func (c *collector) Diagnostics() []*diagnostics.DiagnosticError {
	return c.errs
}
