package lexer

import (
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/source"
)

// ReporterAdapter bridges the lexer's Reporter to a diag.Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (r *ReporterAdapter) Report(code diag.Code, pos source.Position, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(diag.NewError(code, pos, msg))
}
