package lexer

import (
	"strings"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/token"
)

// scanString scans a 'single' or "double" quoted string literal. The
// opposite quote character and raw newlines are forbidden inside either
// form; an unterminated literal is reported at its start position.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // opening quote
	opposite := byte('"')
	if quote == '"' {
		opposite = '\''
	}

	var raw strings.Builder
	badQuote := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			pos := lx.cursor.PosFrom(start)
			text := lx.cursor.TextFrom(start)
			if badQuote {
				return token.Token{Kind: token.Invalid, Pos: pos, Text: text}
			}
			return token.Token{Kind: token.StringConst, Pos: pos, Text: text, StrVal: raw.String()}
		}
		if b == opposite && !badQuote {
			badQuote = true
			lx.errLex(diag.LexUnterminatedString, lx.cursor.PosFrom(start), "opposite quote character in string literal")
		}
		if b == '\n' {
			pos := lx.cursor.PosFrom(start)
			lx.errLex(diag.LexUnterminatedString, pos, "newline in string literal")
			text := lx.cursor.TextFrom(start)
			return token.Token{Kind: token.Invalid, Pos: pos, Text: text}
		}
		raw.WriteByte(b)
		lx.cursor.Bump()
	}

	pos := lx.cursor.PosFrom(start)
	lx.errLex(diag.LexUnterminatedString, pos, "unterminated string literal")
	text := lx.cursor.TextFrom(start)
	return token.Token{Kind: token.Invalid, Pos: pos, Text: text}
}
