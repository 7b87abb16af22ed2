package parser

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/token"
)

// parseStmtBlock parses:
//
//	StmtBlock -> { VarDecl* Stmt* }
func (p *Parser) parseStmtBlock() (*ast.StmtBlock, bool) {
	pos := p.peekAt(0).Pos
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return nil, false
	}
	blk := &ast.StmtBlock{Base: ast.Base{Position: pos}}
	for p.atVarDeclStart() {
		v, ok := p.parseLocalVarDecl()
		if !ok {
			p.resyncStmt()
			continue
		}
		blk.Decls = append(blk.Decls, v)
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		s, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			continue
		}
		blk.Stmts = append(blk.Stmts, s)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}' to close block"); !ok {
		return nil, false
	}
	return blk, true
}

// resyncStmt skips to the next ';', the start of a recognizable statement,
// or the block's closing '}', so one bad statement doesn't poison the rest.
func (p *Parser) resyncStmt() {
	for !p.at(token.EOF) && !p.at(token.RBrace) && !p.at(token.Semicolon) && !startsStmt(p.peekAt(0).Kind) {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func startsStmt(k token.Kind) bool {
	switch k {
	case token.KwIf, token.KwWhile, token.KwFor, token.KwBreak, token.KwReturn,
		token.KwPrint, token.LBrace:
		return true
	default:
		return false
	}
}

// atVarDeclStart reports whether the upcoming tokens form "Type ident",
// i.e. a local declaration rather than an expression statement. A leading
// primitive type keyword always starts a declaration; a leading identifier
// only does when it is itself a type name followed (after any "[]" array
// suffixes) by another identifier, the variable's name.
func (p *Parser) atVarDeclStart() bool {
	switch p.peekAt(0).Kind {
	case token.KwInt, token.KwDouble, token.KwBool, token.KwString:
		return true
	case token.Ident:
		i := 1
		for p.peekAt(i).Kind == token.LBracket && p.peekAt(i+1).Kind == token.RBracket {
			i += 2
		}
		return p.peekAt(i).Kind == token.Ident
	default:
		return false
	}
}

func (p *Parser) parseLocalVarDecl() (*ast.VarDecl, bool) {
	pos := p.peekAt(0).Pos
	ty, ok := p.parseNonVoidType()
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a variable name")
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &ast.VarDecl{Base: ast.Base{Position: pos}, Name: nameTok.Text, Type: ty}, true
}

// parseStmt dispatches on the statement's leading token:
//
//	Stmt -> Expr ; | IfStmt | WhileStmt | ForStmt | BreakStmt | ReturnStmt
//	      | PrintStmt | StmtBlock | ;
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	switch p.peekAt(0).Kind {
	case token.Semicolon:
		pos := p.peekAt(0).Pos
		p.advance()
		return &ast.StmtBlock{Base: ast.Base{Position: pos}}, true
	case token.LBrace:
		return p.parseStmtBlock()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwBreak:
		pos := p.peekAt(0).Pos
		p.advance()
		if !p.expectSemicolon() {
			return nil, false
		}
		return &ast.BreakStmt{Base: ast.Base{Position: pos}}, true
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwPrint:
		return p.parsePrintStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseIfStmt() (ast.Stmt, bool) {
	pos := p.peekAt(0).Pos
	p.advance() // 'if'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'"); !ok {
		return nil, false
	}
	test, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
		return nil, false
	}
	then, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	ifs := &ast.IfStmt{Base: ast.Base{Position: pos}, Test: test, Then: then}
	if p.at(token.KwElse) {
		p.advance()
		els, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		ifs.Else = els
	}
	return ifs, true
}

func (p *Parser) parseWhileStmt() (ast.Stmt, bool) {
	pos := p.peekAt(0).Pos
	p.advance() // 'while'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return nil, false
	}
	test, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
		return nil, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{Base: ast.Base{Position: pos}, Test: test, Body: body}, true
}

func (p *Parser) parseForStmt() (ast.Stmt, bool) {
	pos := p.peekAt(0).Pos
	p.advance() // 'for'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'"); !ok {
		return nil, false
	}
	f := &ast.ForStmt{Base: ast.Base{Position: pos}}
	if !p.at(token.Semicolon) {
		init, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		f.Init = init
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop initializer"); !ok {
		return nil, false
	}
	test, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	f.Test = test
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop test"); !ok {
		return nil, false
	}
	if !p.at(token.RParen) {
		step, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		f.Step = step
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
		return nil, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	f.Body = body
	return f, true
}

func (p *Parser) parseReturnStmt() (ast.Stmt, bool) {
	pos := p.peekAt(0).Pos
	p.advance() // 'return'
	rs := &ast.ReturnStmt{Base: ast.Base{Position: pos}}
	if !p.at(token.Semicolon) {
		v, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		rs.Value = v
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return rs, true
}

// parsePrintStmt parses "Print ( Expr (, Expr)* ) ;". Decaf's grammar
// requires at least one argument.
func (p *Parser) parsePrintStmt() (ast.Stmt, bool) {
	pos := p.peekAt(0).Pos
	p.advance() // 'Print'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'Print'"); !ok {
		return nil, false
	}
	ps := &ast.PrintStmt{Base: ast.Base{Position: pos}}
	for {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		ps.Args = append(ps.Args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return ps, true
}

func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	pos := p.peekAt(0).Pos
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &ast.ExprStmt{Base: ast.Base{Position: pos}, X: x}, true
}
