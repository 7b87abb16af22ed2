package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/token"
)

// TokenOutput is one token's JSON projection for `decafc tokenize --format json`.
type TokenOutput struct {
	Kind string          `json:"kind"`
	Text string          `json:"text,omitempty"`
	Pos  source.Position `json:"pos"`
}

// FormatTokensPretty renders one line per token: its kind, literal text
// when distinct from the kind name, and source position.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d\n", tok.Pos.Line, tok.Pos.Column)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON renders tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Pos: tok.Pos})
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
