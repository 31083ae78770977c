package lexer

import (
	"surge/internal/diag"
	"surge/internal/source"
)

// ReporterAdapter satisfies lexer.Reporter by forwarding every report into
// a diag.Bag as a LexError diagnostic.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Report implements Reporter.
func (r *ReporterAdapter) Report(kind string, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	diag.BagReporter{Bag: r.Bag}.Report(diag.LexError, diag.SevError, span, kind+": "+msg, nil, nil)
}
