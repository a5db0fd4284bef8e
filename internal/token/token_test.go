package token_test

import (
	"testing"

	"rolint/internal/source"
	"rolint/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"local":    token.KwLocal,
		"function": token.KwFunction,
		"elseif":   token.KwElseif,
		"nil":      token.KwNil,
		"until":    token.KwUntil,
	}
	for lexeme, want := range cases {
		got, ok := token.LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want %v", lexeme, got, ok, want)
		}
	}
	for _, s := range []string{"Local", "continue", "type", "export", "Roact", ""} {
		if k, ok := token.LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want identifier", s, k)
		}
	}
}

func TestPredicates(t *testing.T) {
	for _, k := range []token.Kind{token.NumberLit, token.StringLit, token.InterpStringLit, token.KwNil, token.KwTrue} {
		if !tok(k).IsLiteral() {
			t.Errorf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.KwAnd, token.KwWhile, token.KwLocal} {
		if !tok(k).IsKeyword() {
			t.Errorf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() || !tok(token.Ident).IsIdent() {
		t.Errorf("Ident classification broken")
	}
	for _, k := range []token.Kind{token.PlusAssign, token.SlashSlashAssign, token.DotDotAssign} {
		if !tok(k).IsCompoundAssign() {
			t.Errorf("%v should be compound assignment", k)
		}
	}
	if tok(token.Assign).IsCompoundAssign() {
		t.Errorf("= is not compound")
	}
	for _, k := range []token.Kind{token.Plus, token.ColonColon, token.Amp, token.DotDotDot} {
		if !tok(k).IsPunctOrOp() {
			t.Errorf("%v should be punct/op", k)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.TildeEq:  "~=",
		token.KwElseif: "elseif",
		token.EOF:      "EOF",
		token.Kind(250): "Kind(?)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestSoftKeyword(t *testing.T) {
	tk := token.Token{Kind: token.Ident, Text: token.SoftContinue}
	if !tk.IsSoft("continue") || tk.IsSoft("type") {
		t.Fatalf("IsSoft mismatch")
	}
}
