package parser

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/token"
)

// parseDecl dispatches to the top-level declaration forms Decaf allows:
//
//	Decl -> VarDecl | ClassDecl | InterfaceDecl | FnDecl
func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch p.peekAt(0).Kind {
	case token.KwClass:
		return p.parseClassDecl()
	case token.KwInterface:
		return p.parseInterfaceDecl()
	default:
		return p.parseVarOrFnDecl()
	}
}

// parseVarOrFnDecl parses "Type ident ;" or "Type ident ( Formals ) Block",
// distinguishing the two by whether '(' follows the name.
func (p *Parser) parseVarOrFnDecl() (ast.Decl, bool) {
	pos := p.peekAt(0).Pos
	ty, ok := p.parseType()
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a declaration name")
	if !ok {
		return nil, false
	}

	if p.at(token.LParen) {
		return p.parseFnDecl(pos, nameTok.Text, ty)
	}

	if ty.Kind == ast.TypeSyntaxVoid {
		p.report(diag.SynUnexpectedToken, "variables may not have type 'void'")
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &ast.VarDecl{Base: ast.Base{Position: pos}, Name: nameTok.Text, Type: ty}, true
}

// parseFnDecl parses the formals and body of a function/method once its
// return type and name have already been consumed:
//
//	FnDecl -> Type|void ident ( Formals ) StmtBlock
func (p *Parser) parseFnDecl(pos source.Position, name string, ret *ast.TypeSyntax) (ast.Decl, bool) {
	formals, ok := p.parseFormals()
	if !ok {
		return nil, false
	}
	body, ok := p.parseStmtBlock()
	if !ok {
		return nil, false
	}
	return &ast.FnDecl{Base: ast.Base{Position: pos}, Name: name, ReturnType: ret, Formals: formals, Body: body}, true
}

// parseFormals parses "( Variable (, Variable)* )" or "( )".
func (p *Parser) parseFormals() ([]*ast.VarDecl, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil, false
	}
	var formals []*ast.VarDecl
	for !p.at(token.RParen) {
		if len(formals) > 0 {
			if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' between formals"); !ok {
				return nil, false
			}
		}
		v, ok := p.parseFormal()
		if !ok {
			return nil, false
		}
		formals = append(formals, v)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
		return nil, false
	}
	return formals, true
}

func (p *Parser) parseFormal() (*ast.VarDecl, bool) {
	pos := p.peekAt(0).Pos
	ty, ok := p.parseNonVoidType()
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a formal name")
	if !ok {
		return nil, false
	}
	return &ast.VarDecl{Base: ast.Base{Position: pos}, Name: nameTok.Text, Type: ty}, true
}

// parseClassDecl parses:
//
//	ClassDecl -> class ident (extends ident)? (implements ident (, ident)*)? { Field* }
func (p *Parser) parseClassDecl() (ast.Decl, bool) {
	pos := p.peekAt(0).Pos
	p.advance() // 'class'
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a class name")
	if !ok {
		return nil, false
	}
	cd := &ast.ClassDecl{Base: ast.Base{Position: pos}, Name: nameTok.Text}

	if p.at(token.KwExtends) {
		p.advance()
		baseTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a base class name")
		if !ok {
			return nil, false
		}
		cd.Extends = &ast.TypeSyntax{Base: ast.Base{Position: baseTok.Pos}, Kind: ast.TypeSyntaxNamed, Name: baseTok.Text}
	}

	if p.at(token.KwImplements) {
		p.advance()
		for {
			ifaceTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected an interface name")
			if !ok {
				return nil, false
			}
			cd.Implements = append(cd.Implements, &ast.TypeSyntax{Base: ast.Base{Position: ifaceTok.Pos}, Kind: ast.TypeSyntaxNamed, Name: ifaceTok.Text})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open class body"); !ok {
		return nil, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		member, ok := p.parseVarOrFnDecl()
		if !ok {
			p.resyncClassMember()
			continue
		}
		cd.Members = append(cd.Members, member)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}' to close class body"); !ok {
		return nil, false
	}
	return cd, true
}

func (p *Parser) resyncClassMember() {
	for !p.at(token.EOF) && !p.at(token.RBrace) && !isTypeStart(p.peekAt(0).Kind) {
		p.advance()
	}
}

// parseInterfaceDecl parses:
//
//	InterfaceDecl -> interface ident { Prototype* }
//	Prototype -> Type|void ident ( Formals ) ;
func (p *Parser) parseInterfaceDecl() (ast.Decl, bool) {
	pos := p.peekAt(0).Pos
	p.advance() // 'interface'
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected an interface name")
	if !ok {
		return nil, false
	}
	id := &ast.InterfaceDecl{Base: ast.Base{Position: pos}, Name: nameTok.Text}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open interface body"); !ok {
		return nil, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		proto, ok := p.parsePrototype()
		if !ok {
			p.resyncClassMember()
			continue
		}
		id.Members = append(id.Members, proto)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}' to close interface body"); !ok {
		return nil, false
	}
	return id, true
}

func (p *Parser) parsePrototype() (*ast.FnDecl, bool) {
	pos := p.peekAt(0).Pos
	ret, ok := p.parseType()
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a method name")
	if !ok {
		return nil, false
	}
	formals, ok := p.parseFormals()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &ast.FnDecl{Base: ast.Base{Position: pos}, Name: nameTok.Text, ReturnType: ret, Formals: formals}, true
}
