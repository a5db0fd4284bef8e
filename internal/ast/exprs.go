package ast

import (
	"rolint/internal/source"
)

// Exprs manages allocation of expressions and their per-kind payloads.
type Exprs struct {
	Arena       *Arena[Expr]
	Literals    *Arena[LiteralData]
	Names       *Arena[NameData]
	Parens      *Arena[ParenData]
	Suffixeds   *Arena[SuffixedData]
	Tables      *Arena[TableData]
	Functions   *Arena[FunctionData]
	Binaries    *Arena[BinaryData]
	Unaries     *Arena[UnaryData]
	IfElses     *Arena[IfElseData]
	Interps     *Arena[InterpData]
	TypeAsserts *Arena[TypeAssertData]
}

// NewExprs preallocates the expression arena with capHint entries; payload
// arenas get a quarter of it.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Literals:    NewArena[LiteralData](small),
		Names:       NewArena[NameData](small),
		Parens:      NewArena[ParenData](small),
		Suffixeds:   NewArena[SuffixedData](small),
		Tables:      NewArena[TableData](small),
		Functions:   NewArena[FunctionData](small),
		Binaries:    NewArena[BinaryData](small),
		Unaries:     NewArena[UnaryData](small),
		IfElses:     NewArena[IfElseData](small),
		Interps:     NewArena[InterpData](small),
		TypeAsserts: NewArena[TypeAssertData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payloadOf(id ExprID, kinds ...ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil {
		return 0, false
	}
	for _, k := range kinds {
		if expr.Kind == k {
			return uint32(expr.Payload), true
		}
	}
	return 0, false
}

// NewError creates a placeholder for an unparsable expression.
func (e *Exprs) NewError(span source.Span) ExprID {
	return e.new(ExprError, span, NoPayloadID)
}

// NewVararg creates a `...` expression.
func (e *Exprs) NewVararg(span source.Span) ExprID {
	return e.new(ExprVararg, span, NoPayloadID)
}

// NewLiteral creates a Nil, Bool, Number or String expression.
func (e *Exprs) NewLiteral(kind ExprKind, span source.Span, data LiteralData) ExprID {
	payload := e.Literals.Allocate(data)
	return e.new(kind, span, PayloadID(payload))
}

// Literal returns the literal data for Nil, Bool, Number and String expressions.
func (e *Exprs) Literal(id ExprID) (*LiteralData, bool) {
	p, ok := e.payloadOf(id, ExprNil, ExprBool, ExprNumber, ExprString)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

// StringLit returns the literal data only for string literals.
func (e *Exprs) StringLit(id ExprID) (*LiteralData, bool) {
	p, ok := e.payloadOf(id, ExprString)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

func (e *Exprs) NewName(span source.Span, name source.StringID) ExprID {
	payload := e.Names.Allocate(NameData{Name: name})
	return e.new(ExprName, span, PayloadID(payload))
}

func (e *Exprs) Name(id ExprID) (*NameData, bool) {
	p, ok := e.payloadOf(id, ExprName)
	if !ok {
		return nil, false
	}
	return e.Names.Get(p), true
}

func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Parens.Allocate(ParenData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

func (e *Exprs) Paren(id ExprID) (*ParenData, bool) {
	p, ok := e.payloadOf(id, ExprParen)
	if !ok {
		return nil, false
	}
	return e.Parens.Get(p), true
}

func (e *Exprs) NewSuffixed(span source.Span, prefix ExprID, suffixes []Suffix) ExprID {
	payload := e.Suffixeds.Allocate(SuffixedData{Prefix: prefix, Suffixes: suffixes})
	return e.new(ExprSuffixed, span, PayloadID(payload))
}

func (e *Exprs) Suffixed(id ExprID) (*SuffixedData, bool) {
	p, ok := e.payloadOf(id, ExprSuffixed)
	if !ok {
		return nil, false
	}
	return e.Suffixeds.Get(p), true
}

// Call returns the suffixed data of id when it is a function call.
func (e *Exprs) Call(id ExprID) (*SuffixedData, bool) {
	data, ok := e.Suffixed(id)
	if !ok || !data.IsCall() {
		return nil, false
	}
	return data, true
}

func (e *Exprs) NewTable(span source.Span, fields []TableField) ExprID {
	payload := e.Tables.Allocate(TableData{Fields: fields})
	return e.new(ExprTable, span, PayloadID(payload))
}

func (e *Exprs) Table(id ExprID) (*TableData, bool) {
	p, ok := e.payloadOf(id, ExprTable)
	if !ok {
		return nil, false
	}
	return e.Tables.Get(p), true
}

func (e *Exprs) NewFunction(span source.Span, data FunctionData) ExprID {
	payload := e.Functions.Allocate(data)
	return e.new(ExprFunction, span, PayloadID(payload))
}

func (e *Exprs) Function(id ExprID) (*FunctionData, bool) {
	p, ok := e.payloadOf(id, ExprFunction)
	if !ok {
		return nil, false
	}
	return e.Functions.Get(p), true
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, opPos source.Span, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(BinaryData{Op: op, OpPos: opPos, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*BinaryData, bool) {
	p, ok := e.payloadOf(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(UnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*UnaryData, bool) {
	p, ok := e.payloadOf(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewIfElse(span source.Span, data IfElseData) ExprID {
	payload := e.IfElses.Allocate(data)
	return e.new(ExprIfElse, span, PayloadID(payload))
}

func (e *Exprs) IfElse(id ExprID) (*IfElseData, bool) {
	p, ok := e.payloadOf(id, ExprIfElse)
	if !ok {
		return nil, false
	}
	return e.IfElses.Get(p), true
}

func (e *Exprs) NewInterp(span source.Span, raw source.StringID) ExprID {
	payload := e.Interps.Allocate(InterpData{Raw: raw})
	return e.new(ExprInterp, span, PayloadID(payload))
}

func (e *Exprs) Interp(id ExprID) (*InterpData, bool) {
	p, ok := e.payloadOf(id, ExprInterp)
	if !ok {
		return nil, false
	}
	return e.Interps.Get(p), true
}

func (e *Exprs) NewTypeAssert(span source.Span, inner ExprID, typeSpan source.Span) ExprID {
	payload := e.TypeAsserts.Allocate(TypeAssertData{Expr: inner, TypeSpan: typeSpan})
	return e.new(ExprTypeAssert, span, PayloadID(payload))
}

func (e *Exprs) TypeAssert(id ExprID) (*TypeAssertData, bool) {
	p, ok := e.payloadOf(id, ExprTypeAssert)
	if !ok {
		return nil, false
	}
	return e.TypeAsserts.Get(p), true
}

// StripParens returns the expression inside any number of redundant
// parentheses; other expressions are returned unchanged.
func (e *Exprs) StripParens(id ExprID) ExprID {
	for {
		p, ok := e.Paren(id)
		if !ok {
			return id
		}
		id = p.Inner
	}
}
