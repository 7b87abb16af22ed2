package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/lexer"
	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, pos source.Position, msg string) {
	r.diagnostics = append(r.diagnostics, diag.NewError(code, pos, msg))
}

func (r *testReporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.decaf", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"foo", "_bar", "__test", "x123", "camelCase", "UPPER"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Ident, input)
		})
	}
}

func TestIdentifierTruncation(t *testing.T) {
	long := strings.Repeat("a", 40)
	want := long[:31]
	expectSingleToken(t, long, token.Ident, want)
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"void", token.KwVoid},
		{"int", token.KwInt},
		{"double", token.KwDouble},
		{"bool", token.KwBool},
		{"string", token.KwString},
		{"null", token.KwNull},
		{"class", token.KwClass},
		{"extends", token.KwExtends},
		{"this", token.KwThis},
		{"interface", token.KwInterface},
		{"implements", token.KwImplements},
		{"while", token.KwWhile},
		{"for", token.KwFor},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"return", token.KwReturn},
		{"break", token.KwBreak},
		{"new", token.KwNew},
		{"NewArray", token.KwNewArray},
		{"Print", token.KwPrint},
		{"ReadInteger", token.KwReadInteger},
		{"ReadLine", token.KwReadLine},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, tok.Kind)
			}
		})
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	tests := []string{"Void", "INT", "Class", "WHILE", "Print_", "newarray"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, _ := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Ident {
				t.Errorf("expected Ident for %q, got %v", input, tok.Kind)
			}
		})
	}
}

func TestNumbers_Decimal(t *testing.T) {
	tests := []string{"0", "123", "456789"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.IntConst, input)
		})
	}
}

func TestNumbers_Hexadecimal(t *testing.T) {
	tests := []string{"0x0", "0xF", "0xDEADBEEF", "0xff", "0X123"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.IntConst, input)
		})
	}
}

func TestNumbers_Double(t *testing.T) {
	tests := []string{"1.0", "3.14", "0.5", "123.456", "1.", ".5", ".123"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.DoubleConst, input)
		})
	}
}

func TestNumbers_DoubleWithExponent(t *testing.T) {
	tests := []string{"1.0e10", "1.0E10", "1.0e+10", "1.0e-10", "1.5e10", "3.14e-2"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.DoubleConst, input)
		})
	}
}

func TestNumbers_IntFollowedByBareExponentIsNotDouble(t *testing.T) {
	// Doubles require a '.'; a bare exponent after integer digits is not
	// part of the number, so "5e3" lexes as IntConst(5) then ident "e3".
	expectTokens(t, "5e3", []token.Kind{token.IntConst, token.Ident})
}

func TestNumbers_InvalidExponent(t *testing.T) {
	tests := []string{"1.0e", "1.0e+", "1.0e-"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for %q, got %v", input, tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected error report for malformed exponent")
			}
		})
	}
}

func TestNumbers_DotFollowedByLetterIsNotNumber(t *testing.T) {
	expectTokens(t, ".foo", []token.Kind{token.Dot, token.Ident})
}

func TestString_Simple(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{`""`, `""`},
		{`"hello"`, `"hello"`},
		{`"hello world"`, `"hello world"`},
		{`'hello'`, `'hello'`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.StringConst, tt.text)
		})
	}
}

func TestString_OppositeQuoteRejected(t *testing.T) {
	lx, reporter := makeTestLexer(`"it's here"`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid for a string containing the opposite quote, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected error report for the opposite quote inside a string")
	}
}

func TestString_Unterminated(t *testing.T) {
	tests := []string{`"hello`, `'world`, `"unclosed string`}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for unterminated string, got %v", tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected error report for unterminated string")
			}
		})
	}
}

func TestString_NewlineInString(t *testing.T) {
	lx, reporter := makeTestLexer("\"hello\nworld\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid for newline in string, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected error report for newline in string")
	}
}

func TestString_NoEscapeSequences(t *testing.T) {
	// Decaf strings have no escapes: a backslash is just a literal byte.
	expectSingleToken(t, `"a\b"`, token.StringConst, `"a\b"`)
}

func TestOperators_Single(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Star},
		{"/", token.Slash},
		{"%", token.Percent},
		{"=", token.Assign},
		{"!", token.Bang},
		{"<", token.Lt},
		{">", token.Gt},
		{";", token.Semicolon},
		{",", token.Comma},
		{".", token.Dot},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestOperators_Double(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestPunctuation(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"(", token.LParen},
		{")", token.RParen},
		{"{", token.LBrace},
		{"}", token.RBrace},
		{"[", token.LBracket},
		{"]", token.RBracket},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestOperators_GreedyTwoCharacter(t *testing.T) {
	expectTokens(t, "<=>", []token.Kind{token.LtEq, token.Gt})
	expectTokens(t, "=-=", []token.Kind{token.Assign, token.Minus, token.Assign})
}

func TestComments_Line(t *testing.T) {
	expectTokens(t, "int x; // trailing comment\n", []token.Kind{
		token.KwInt, token.Ident, token.Semicolon,
	})
}

func TestComments_Block(t *testing.T) {
	expectTokens(t, "int /* inline */ x;", []token.Kind{
		token.KwInt, token.Ident, token.Semicolon,
	})
}

func TestComments_BlockDoesNotNest(t *testing.T) {
	// "/* /* */" closes at the first "*/", leaving a dangling "*/" token run.
	expectTokens(t, "/* /* */ */", []token.Kind{token.Star, token.Slash})
}

func TestComments_UnterminatedBlock(t *testing.T) {
	lx, reporter := makeTestLexer("/* unterminated")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Errorf("expected EOF after unterminated block comment, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected error report for unterminated block comment")
	}
}

func TestLexer_SimpleDeclaration(t *testing.T) {
	expectTokens(t, "int x = 123 + 456;", []token.Kind{
		token.KwInt, token.Ident, token.Assign, token.IntConst, token.Plus, token.IntConst, token.Semicolon,
	})
}

func TestLexer_FunctionDefinition(t *testing.T) {
	input := "int add(int a, int b) { return a + b; }"
	expectTokens(t, input, []token.Kind{
		token.KwInt, token.Ident, token.LParen,
		token.KwInt, token.Ident, token.Comma,
		token.KwInt, token.Ident, token.RParen,
		token.LBrace,
		token.KwReturn, token.Ident, token.Plus, token.Ident, token.Semicolon,
		token.RBrace,
	})
}

func TestLexer_ArrayAccess(t *testing.T) {
	expectTokens(t, "arr[0] && flag || !condition", []token.Kind{
		token.Ident, token.LBracket, token.IntConst, token.RBracket,
		token.AndAnd, token.Ident, token.OrOr, token.Bang, token.Ident,
	})
}

func TestLexer_PeekBehavior(t *testing.T) {
	lx, _ := makeTestLexer("a b c")

	peek1 := lx.Peek()
	if peek1.Kind != token.Ident || peek1.Text != "a" {
		t.Errorf("first peek: expected Ident 'a', got %v %q", peek1.Kind, peek1.Text)
	}

	peek2 := lx.Peek()
	if peek2.Kind != peek1.Kind || peek2.Text != peek1.Text {
		t.Error("second peek should return the same token")
	}

	next1 := lx.Next()
	if next1.Kind != peek1.Kind || next1.Text != peek1.Text {
		t.Error("next should return the peeked token")
	}

	next2 := lx.Next()
	if next2.Text != "b" {
		t.Errorf("expected 'b', got %q", next2.Text)
	}
}

func TestLexer_EOF(t *testing.T) {
	lx, _ := makeTestLexer("x")

	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF again, got %v", tok.Kind)
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF for empty input, got %v", tok.Kind)
	}
}

func TestLexer_OnlyWhitespace(t *testing.T) {
	lx, _ := makeTestLexer("   \t\n  ")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF for whitespace-only input, got %v", tok.Kind)
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	tests := []string{"#", "$", "@", "~"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for unknown char %q, got %v", input, tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected error report for unknown character")
			}
		})
	}
}

func BenchmarkLexer_SimpleExpression(b *testing.B) {
	input := "int x = 123 + 456 * 789;"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.decaf", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file, lexer.Options{})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}

func BenchmarkLexer_LargeFile(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("int function")
		sb.WriteString(fmt.Sprintf("%d", i))
		sb.WriteString("(int arg1, int arg2) { return arg1 + arg2; }\n")
	}
	input := sb.String()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.decaf", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file, lexer.Options{})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}
