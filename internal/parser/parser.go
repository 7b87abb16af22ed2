package parser

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/lexer"
	"github.com/hodevin/decaf/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

func (o *Options) enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state of a recursive-descent pass over one token stream.
// It keeps a small buffer on top of the lexer's own one-token lookahead so
// that declarations like "ClassName x;" can be told apart from an
// expression statement starting with the same identifier.
type Parser struct {
	lx   *lexer.Lexer
	opts Options
	buf  []token.Token
	last token.Token // last token consumed, for end-of-input diagnostics
}

// ParseProgram parses one Decaf source file into a *ast.Program.
func ParseProgram(lx *lexer.Lexer, opts Options) *ast.Program {
	p := &Parser{lx: lx, opts: opts}
	pos := p.peekAt(0).Pos
	prog := &ast.Program{Base: ast.Base{Position: pos}}
	for !p.at(token.EOF) {
		d, ok := p.parseDecl()
		if !ok {
			p.resyncTopLevel()
			continue
		}
		prog.Decls = append(prog.Decls, d)
	}
	return prog
}

// peekAt returns the token n positions ahead (0 = the next token to be
// consumed), filling the buffer from the lexer as needed.
func (p *Parser) peekAt(n int) token.Token {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lx.Next())
	}
	return p.buf[n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peekAt(0).Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.peekAt(0)
	p.buf = p.buf[1:]
	if tok.Kind != token.EOF {
		p.last = tok
	}
	return tok
}

// expect consumes the current token if it matches k, else reports code/msg
// at the current position and returns ok=false without consuming.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, msg)
	return token.Token{}, false
}

func (p *Parser) expectSemicolon() bool {
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	return ok
}

func (p *Parser) report(code diag.Code, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	p.opts.CurrentErrors++
	if p.opts.enough() {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, p.peekAt(0).Pos, msg, nil, nil)
}

// resyncTopLevel skips tokens until it finds one that can start a new
// top-level declaration (a primitive/class/interface/void keyword, or an
// identifier) or reaches EOF, so one malformed top-level decl doesn't
// cascade into spurious errors for the rest of the file.
func (p *Parser) resyncTopLevel() {
	for !p.at(token.EOF) && !startsDecl(p.peekAt(0).Kind) {
		p.advance()
	}
}

func startsDecl(k token.Kind) bool {
	switch k {
	case token.KwVoid, token.KwInt, token.KwDouble, token.KwBool, token.KwString,
		token.KwClass, token.KwInterface, token.Ident:
		return true
	default:
		return false
	}
}
