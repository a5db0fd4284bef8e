package ast

import (
	"rolint/internal/source"
)

type FieldKind uint8

const (
	// FieldNameKey is `name = value`.
	FieldNameKey FieldKind = iota
	// FieldExprKey is `[key] = value`.
	FieldExprKey
	// FieldPositional is a bare `value`.
	FieldPositional
)

func (k FieldKind) String() string {
	switch k {
	case FieldNameKey:
		return "NameKey"
	case FieldExprKey:
		return "ExprKey"
	case FieldPositional:
		return "Positional"
	}
	return "Field(?)"
}

// TableField is one entry of a table constructor.
type TableField struct {
	Kind FieldKind
	Span source.Span
	// FieldNameKey
	Name     source.StringID
	NameSpan source.Span
	// FieldExprKey: Brackets покрывает `[` ... `]`
	Key      ExprID
	Brackets source.Span
	Value    ExprID
}

type TableData struct {
	Fields []TableField
}
