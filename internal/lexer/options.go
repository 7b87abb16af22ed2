package lexer

import (
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/source"
)

// Reporter is the thin sink the lexer calls into on malformed input. Every
// lexical finding is an error; there is no lexer warning/info tier.
type Reporter interface {
	Report(code diag.Code, pos source.Position, msg string)
}

type Options struct {
	Reporter Reporter // nil disables error reporting, lexing still proceeds
}

func (lx *Lexer) errLex(code diag.Code, pos source.Position, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, pos, msg)
	}
}
