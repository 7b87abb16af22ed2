package parser

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/token"
)

// Binary operator precedence, lowest to highest. Assignment is
// right-associative; every other binary operator here is left-associative.
const (
	precAssign = 1
	precOr     = 2
	precAnd    = 3
	precEq     = 4
	precRel    = 5
	precAdd    = 6
	precMul    = 7
)

func binaryPrec(k token.Kind) int {
	switch k {
	case token.Assign:
		return precAssign
	case token.OrOr:
		return precOr
	case token.AndAnd:
		return precAnd
	case token.EqEq, token.BangEq:
		return precEq
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precRel
	case token.Plus, token.Minus:
		return precAdd
	case token.Star, token.Slash, token.Percent:
		return precMul
	default:
		return 0
	}
}

// parseExpr parses an expression via precedence climbing.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinary(1)
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		op := p.peekAt(0).Kind
		prec := binaryPrec(op)
		if prec == 0 || prec < minPrec {
			return left, true
		}
		pos := p.peekAt(0).Pos
		p.advance()

		// Assignment is right-associative; everything else is left.
		nextMin := prec + 1
		if op == token.Assign {
			nextMin = prec
		}
		right, ok := p.parseBinary(nextMin)
		if !ok {
			return nil, false
		}

		if op == token.Assign {
			left = &ast.AssignExpr{Base: ast.Base{Position: pos}, Target: left, Value: right}
		} else {
			left = &ast.BinaryExpr{Base: ast.Base{Position: pos}, Op: op, Left: left, Right: right}
		}
	}
}

// parseUnary handles unary minus and logical not, then falls through to
// postfix chains on a primary expression.
func (p *Parser) parseUnary() (ast.Expr, bool) {
	switch p.peekAt(0).Kind {
	case token.Minus, token.Bang:
		pos := p.peekAt(0).Pos
		op := p.advance().Kind
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{Base: ast.Base{Position: pos}, Op: op, Operand: operand}, true
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary expression followed by any chain of
// ".ident", ".ident(Actuals)", and "[Expr]" suffixes.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch p.peekAt(0).Kind {
		case token.Dot:
			pos := p.peekAt(0).Pos
			p.advance()
			nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a field or method name after '.'")
			if !ok {
				return nil, false
			}
			if p.at(token.LParen) {
				args, ok := p.parseActuals()
				if !ok {
					return nil, false
				}
				expr = &ast.CallExpr{Base: ast.Base{Position: pos}, Receiver: expr, Name: nameTok.Text, Args: args}
			} else {
				expr = &ast.FieldAccessExpr{Base: ast.Base{Position: pos}, Receiver: expr, Name: nameTok.Text}
			}
		case token.LBracket:
			pos := p.peekAt(0).Pos
			p.advance()
			idx, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']'"); !ok {
				return nil, false
			}
			expr = &ast.ArrayAccessExpr{Base: ast.Base{Position: pos}, Array: expr, Index: idx}
		default:
			return expr, true
		}
	}
}

// parseActuals parses "( Expr (, Expr)* )" or "( )".
func (p *Parser) parseActuals() ([]ast.Expr, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil, false
	}
	var args []ast.Expr
	for !p.at(token.RParen) {
		if len(args) > 0 {
			if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' between arguments"); !ok {
				return nil, false
			}
		}
		a, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, a)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
		return nil, false
	}
	return args, true
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.peekAt(0)
	switch tok.Kind {
	case token.IntConst:
		p.advance()
		return &ast.IntLit{Base: ast.Base{Position: tok.Pos}, Value: tok.IntVal}, true
	case token.DoubleConst:
		p.advance()
		return &ast.DoubleLit{Base: ast.Base{Position: tok.Pos}, Value: tok.DoubleVal}, true
	case token.BoolConst:
		p.advance()
		return &ast.BoolLit{Base: ast.Base{Position: tok.Pos}, Value: tok.BoolVal}, true
	case token.StringConst:
		p.advance()
		return &ast.StringLit{Base: ast.Base{Position: tok.Pos}, Value: tok.StrVal}, true
	case token.KwNull:
		p.advance()
		return &ast.NullLit{Base: ast.Base{Position: tok.Pos}}, true
	case token.KwThis:
		p.advance()
		return &ast.ThisExpr{Base: ast.Base{Position: tok.Pos}}, true
	case token.KwReadInteger:
		p.advance()
		if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'ReadInteger'"); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
			return nil, false
		}
		return &ast.ReadIntegerExpr{Base: ast.Base{Position: tok.Pos}}, true
	case token.KwReadLine:
		p.advance()
		if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'ReadLine'"); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
			return nil, false
		}
		return &ast.ReadLineExpr{Base: ast.Base{Position: tok.Pos}}, true
	case token.KwNew:
		p.advance()
		nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a class name after 'new'")
		if !ok {
			return nil, false
		}
		return &ast.NewExpr{Base: ast.Base{Position: tok.Pos}, ClassName: nameTok.Text}, true
	case token.KwNewArray:
		p.advance()
		if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'NewArray'"); !ok {
			return nil, false
		}
		size, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' after NewArray size"); !ok {
			return nil, false
		}
		elemTy, ok := p.parseNonVoidType()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
			return nil, false
		}
		return &ast.NewArrayExpr{Base: ast.Base{Position: tok.Pos}, Size: size, ElemType: elemTy}, true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
			return nil, false
		}
		return inner, true
	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			args, ok := p.parseActuals()
			if !ok {
				return nil, false
			}
			return &ast.CallExpr{Base: ast.Base{Position: tok.Pos}, Name: tok.Text, Args: args}, true
		}
		return &ast.IdentExpr{Base: ast.Base{Position: tok.Pos}, Name: tok.Text}, true
	default:
		p.report(diag.SynUnexpectedToken, "expected an expression, got \""+tok.String()+"\"")
		return nil, false
	}
}
