package ast

import (
	"rolint/internal/source"
)

type ExprKind uint8

const (
	ExprError ExprKind = iota // заглушка после синтаксической ошибки
	ExprNil
	ExprBool
	ExprNumber
	ExprString
	ExprVararg
	ExprTable
	ExprFunction
	ExprName
	ExprParen
	ExprSuffixed
	ExprBinary
	ExprUnary
	ExprIfElse
	ExprInterp
	ExprTypeAssert
)

var exprKindNames = [...]string{
	ExprError:      "Error",
	ExprNil:        "Nil",
	ExprBool:       "Bool",
	ExprNumber:     "Number",
	ExprString:     "String",
	ExprVararg:     "Vararg",
	ExprTable:      "Table",
	ExprFunction:   "Function",
	ExprName:       "Name",
	ExprParen:      "Paren",
	ExprSuffixed:   "Suffixed",
	ExprBinary:     "Binary",
	ExprUnary:      "Unary",
	ExprIfElse:     "IfElse",
	ExprInterp:     "Interp",
	ExprTypeAssert: "TypeAssert",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// LiteralData backs Nil, Bool, Number and String expressions.
type LiteralData struct {
	Raw source.StringID // исходный текст токена
	// Body: для строк - текст между кавычками как написан, без раскрытия escape.
	Body source.StringID
	// Value: для строк - декодированное NFC-значение, для показа и дампа AST.
	Value source.StringID
	Bool  bool
}

type NameData struct {
	Name source.StringID
}

type ParenData struct {
	Inner ExprID
}

type BinaryOp uint8

const (
	BinOr BinaryOp = iota
	BinAnd
	BinLt
	BinGt
	BinLtEq
	BinGtEq
	BinNotEq
	BinEq
	BinConcat
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinFloorDiv
	BinMod
	BinPow
)

var binaryOpText = [...]string{
	BinOr: "or", BinAnd: "and", BinLt: "<", BinGt: ">", BinLtEq: "<=", BinGtEq: ">=",
	BinNotEq: "~=", BinEq: "==", BinConcat: "..", BinAdd: "+", BinSub: "-", BinMul: "*",
	BinDiv: "/", BinFloorDiv: "//", BinMod: "%", BinPow: "^",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

type BinaryData struct {
	Op    BinaryOp
	OpPos source.Span
	Left  ExprID
	Right ExprID
}

type UnaryOp uint8

const (
	UnNot UnaryOp = iota
	UnNeg
	UnLen
)

func (op UnaryOp) String() string {
	switch op {
	case UnNot:
		return "not"
	case UnNeg:
		return "-"
	case UnLen:
		return "#"
	}
	return "?"
}

type UnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type Param struct {
	Name source.StringID
	Span source.Span
}

type FunctionData struct {
	Params []Param
	Vararg bool
	Body   BlockID
}

// IfElseBranch is one `if c then v` / `elseif c then v` arm.
type IfElseBranch struct {
	Cond  ExprID
	Value ExprID
}

type IfElseData struct {
	Branches []IfElseBranch
	Else     ExprID
}

// InterpData keeps the raw backtick string; embedded expressions are not parsed.
type InterpData struct {
	Raw source.StringID
}

// TypeAssertData is `expr :: Type`; the type itself is skipped.
type TypeAssertData struct {
	Expr     ExprID
	TypeSpan source.Span
}
