package parser

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/token"
)

// parseType parses a Type, including any trailing "[]" array suffixes:
//
//	Type -> void | int | double | bool | string | ident | Type []
func (p *Parser) parseType() (*ast.TypeSyntax, bool) {
	pos := p.peekAt(0).Pos
	var ts *ast.TypeSyntax
	switch p.peekAt(0).Kind {
	case token.KwVoid:
		p.advance()
		ts = &ast.TypeSyntax{Base: ast.Base{Position: pos}, Kind: ast.TypeSyntaxVoid}
	case token.KwInt:
		p.advance()
		ts = &ast.TypeSyntax{Base: ast.Base{Position: pos}, Kind: ast.TypeSyntaxInt}
	case token.KwDouble:
		p.advance()
		ts = &ast.TypeSyntax{Base: ast.Base{Position: pos}, Kind: ast.TypeSyntaxDouble}
	case token.KwBool:
		p.advance()
		ts = &ast.TypeSyntax{Base: ast.Base{Position: pos}, Kind: ast.TypeSyntaxBool}
	case token.KwString:
		p.advance()
		ts = &ast.TypeSyntax{Base: ast.Base{Position: pos}, Kind: ast.TypeSyntaxString}
	case token.Ident:
		tok := p.advance()
		ts = &ast.TypeSyntax{Base: ast.Base{Position: pos}, Kind: ast.TypeSyntaxNamed, Name: tok.Text}
	default:
		p.report(diag.SynUnexpectedToken, "expected a type")
		return nil, false
	}

	for p.at(token.LBracket) {
		lb := p.peekAt(0).Pos
		p.advance()
		if _, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close array type"); !ok {
			return nil, false
		}
		ts = &ast.TypeSyntax{Base: ast.Base{Position: lb}, Kind: ast.TypeSyntaxArray, Elem: ts}
	}
	return ts, true
}

// parseNonVoidType parses a Type that may not be "void", used for formal
// parameters and variable declarations.
func (p *Parser) parseNonVoidType() (*ast.TypeSyntax, bool) {
	ts, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if ts.Kind == ast.TypeSyntaxVoid {
		p.report(diag.SynUnexpectedToken, "variables may not have type 'void'")
		return nil, false
	}
	return ts, true
}

func isTypeStart(k token.Kind) bool {
	switch k {
	case token.KwVoid, token.KwInt, token.KwDouble, token.KwBool, token.KwString, token.Ident:
		return true
	default:
		return false
	}
}
