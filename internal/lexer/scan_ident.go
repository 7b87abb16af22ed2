package lexer

import "github.com/hodevin/decaf/internal/token"

// maxIdentLen is Decaf's identifier length limit; longer identifiers are
// truncated with no diagnostic, per spec.
const maxIdentLen = 31

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and checks it against the
// keyword table. Keywords are case-sensitive.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	pos := lx.cursor.PosFrom(start)
	text := lx.cursor.TextFrom(start)
	if len(text) > maxIdentLen {
		text = text[:maxIdentLen]
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Pos: pos, Text: text}
	}
	return token.Token{Kind: token.Ident, Pos: pos, Text: text}
}
