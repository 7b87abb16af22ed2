package lexer

import (
	"strconv"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/token"
)

// scanNumber scans an int or double constant.
//
//	IntConst    := "0x" [0-9a-fA-F]+ | [0-9]+
//	DoubleConst := [0-9]* "." [0-9]* ([eE] [+-]? [0-9]+)?
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '.' {
		return lx.finishDouble(start)
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		pos := lx.cursor.PosFrom(start)
		text := lx.cursor.TextFrom(start)
		v, err := strconv.ParseInt(text[2:], 16, 64)
		if err != nil {
			lx.errLex(diag.LexBadNumber, pos, "malformed hex integer literal")
		}
		return token.Token{Kind: token.IntConst, Pos: pos, Text: text, IntVal: v}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		return lx.finishDouble(start)
	}

	pos := lx.cursor.PosFrom(start)
	text := lx.cursor.TextFrom(start)
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, pos, "malformed integer literal")
	}
	return token.Token{Kind: token.IntConst, Pos: pos, Text: text, IntVal: v}
}

// finishDouble consumes the '.' and any fractional digits, then a possible
// exponent, and emits a DoubleConst.
func (lx *Lexer) finishDouble(start Mark) token.Token {
	lx.cursor.Bump() // '.'
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		return lx.finishExponent(start)
	}
	pos := lx.cursor.PosFrom(start)
	text := lx.cursor.TextFrom(start)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, pos, "malformed double literal")
	}
	return token.Token{Kind: token.DoubleConst, Pos: pos, Text: text, DoubleVal: v}
}

func (lx *Lexer) finishExponent(start Mark) token.Token {
	lx.cursor.Bump() // 'e'/'E'
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		pos := lx.cursor.PosFrom(start)
		text := lx.cursor.TextFrom(start)
		lx.errLex(diag.LexBadNumber, pos, "expected digit after exponent")
		return token.Token{Kind: token.Invalid, Pos: pos, Text: text}
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	pos := lx.cursor.PosFrom(start)
	text := lx.cursor.TextFrom(start)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, pos, "malformed double literal")
	}
	return token.Token{Kind: token.DoubleConst, Pos: pos, Text: text, DoubleVal: v}
}
