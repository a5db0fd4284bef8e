package dialect

import (
	"rolint/internal/source"
	"rolint/internal/token"
)

// ObserveTokenPair records token-pattern evidence using a sliding 2-token
// window. The caller feeds tokens in source order.
func ObserveTokenPair(e *Evidence, prev, tok token.Token) {
	if e == nil {
		return
	}

	switch {
	case tok.IsCompoundAssign():
		e.Add(Hint{Dialect: Roblox, Score: 4, Reason: "luau compound assignment `" + tok.Text + "`", Span: tok.Span})
	case tok.Kind == token.InterpStringLit:
		e.Add(Hint{Dialect: Roblox, Score: 5, Reason: "luau interpolated string", Span: tok.Span})
	case tok.Kind == token.ColonColon:
		e.Add(Hint{Dialect: Roblox, Score: 4, Reason: "luau type assertion `::`", Span: tok.Span})
	case tok.Kind == token.Arrow:
		e.Add(Hint{Dialect: Roblox, Score: 3, Reason: "luau function type `->`", Span: tok.Span})
	}

	// export type Foo = ...
	if prev.IsSoft(token.SoftExport) && tok.IsSoft(token.SoftType) {
		e.Add(Hint{
			Dialect: Roblox,
			Score:   6,
			Reason:  "luau `export type`",
			Span:    prev.Span.Cover(tok.Span),
		})
	}
}

// RecordSyntax lets the parser report constructs only it can recognise,
// such as `continue` statements and type aliases.
func RecordSyntax(e *Evidence, reason string, tok token.Token) {
	if e == nil {
		return
	}
	e.Add(Hint{Dialect: Roblox, Score: 4, Reason: reason, Span: tok.Span})
}

// ObserveFile records evidence that comes from the file itself rather than
// its tokens. A .luau extension is a weak Roblox signal: any real Lua 5.1
// evidence in the body outweighs it.
func ObserveFile(e *Evidence, f *source.File) {
	if e == nil || f == nil {
		return
	}
	if f.Flags&source.FileLuau != 0 {
		e.Add(Hint{Dialect: Roblox, Score: 1, Reason: "`.luau` file extension", Span: source.Span{File: f.ID}})
	}
}
