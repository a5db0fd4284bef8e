// Package token defines lexical token kinds and trivia for Lua and Luau sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments never appear in the main token stream; they are leading Trivia.
//   - Luau soft keywords (continue, type, export) are lexed as Ident and
//     recognised by the parser from context.
//   - A backtick string is one InterpStringLit token, braces included.
package token
