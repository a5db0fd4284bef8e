package ast

import (
	"rolint/internal/source"
)

type SuffixKind uint8

const (
	// SuffixDot is `.name`.
	SuffixDot SuffixKind = iota
	// SuffixBracket is `[expr]`.
	SuffixBracket
	// SuffixCall is an anonymous call `(args)`, `"str"` or `{table}`.
	SuffixCall
	// SuffixMethod is `:name(args)`.
	SuffixMethod
)

func (k SuffixKind) String() string {
	switch k {
	case SuffixDot:
		return "Dot"
	case SuffixBracket:
		return "Bracket"
	case SuffixCall:
		return "Call"
	case SuffixMethod:
		return "Method"
	}
	return "Suffix(?)"
}

type ArgsKind uint8

const (
	// ArgsParens is a parenthesised, possibly empty, argument list.
	ArgsParens ArgsKind = iota
	// ArgsString is the `f "literal"` sugar.
	ArgsString
	// ArgsTable is the `f { ... }` sugar.
	ArgsTable
)

func (k ArgsKind) String() string {
	switch k {
	case ArgsParens:
		return "Parens"
	case ArgsString:
		return "String"
	case ArgsTable:
		return "Table"
	}
	return "Args(?)"
}

// CallArgs are the arguments of a call or method suffix.
// For ArgsString and ArgsTable, List holds exactly one expression.
type CallArgs struct {
	Kind ArgsKind
	Span source.Span // включая скобки
	List []ExprID
}

// Suffix is one link of a suffixed expression chain.
type Suffix struct {
	Kind SuffixKind
	Span source.Span
	// Name и NameSpan - для SuffixDot и SuffixMethod
	Name     source.StringID
	NameSpan source.Span
	// Index - для SuffixBracket
	Index ExprID
	// Args - для SuffixCall и SuffixMethod
	Args CallArgs
}

// IsCall reports whether the suffix invokes a function.
func (s *Suffix) IsCall() bool {
	return s.Kind == SuffixCall || s.Kind == SuffixMethod
}

// SuffixedData is `prefix suffix*`, the Lua "prefixexp".
type SuffixedData struct {
	Prefix   ExprID // ExprName или ExprParen
	Suffixes []Suffix
}

// IsCall reports whether the chain ends in a call, i.e. it is a function call.
func (d *SuffixedData) IsCall() bool {
	return len(d.Suffixes) > 0 && d.Suffixes[len(d.Suffixes)-1].IsCall()
}

// Callee returns the suffixes before the final call and the call suffix itself.
// ok is false when the chain does not end in a call.
func (d *SuffixedData) Callee() (head []Suffix, call *Suffix, ok bool) {
	if !d.IsCall() {
		return nil, nil, false
	}
	n := len(d.Suffixes)
	return d.Suffixes[:n-1], &d.Suffixes[n-1], true
}
