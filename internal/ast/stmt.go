package ast

import (
	"rolint/internal/source"
)

type StmtKind uint8

const (
	StmtError StmtKind = iota
	StmtLocal
	StmtAssign
	StmtCompoundAssign
	StmtCall
	StmtDo
	StmtWhile
	StmtRepeat
	StmtIf
	StmtNumericFor
	StmtGenericFor
	StmtFunction
	StmtLocalFunction
	StmtReturn
	StmtBreak
	StmtContinue
	StmtTypeAlias
)

var stmtKindNames = [...]string{
	StmtError:          "Error",
	StmtLocal:          "Local",
	StmtAssign:         "Assign",
	StmtCompoundAssign: "CompoundAssign",
	StmtCall:           "Call",
	StmtDo:             "Do",
	StmtWhile:          "While",
	StmtRepeat:         "Repeat",
	StmtIf:             "If",
	StmtNumericFor:     "NumericFor",
	StmtGenericFor:     "GenericFor",
	StmtFunction:       "Function",
	StmtLocalFunction:  "LocalFunction",
	StmtReturn:         "Return",
	StmtBreak:          "Break",
	StmtContinue:       "Continue",
	StmtTypeAlias:      "TypeAlias",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt(?)"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// Binding is a name introduced by local, for or function parameters.
type Binding struct {
	Name source.StringID
	Span source.Span
}

// LocalData is `local a, b = x, y`. Names and Exprs may differ in length.
type LocalData struct {
	Names []Binding
	Exprs []ExprID
}

type AssignData struct {
	Targets []ExprID
	Exprs   []ExprID
}

// CompoundAssignData is `target op= value`; Op is the underlying binary operator.
type CompoundAssignData struct {
	Op     BinaryOp
	Target ExprID
	Value  ExprID
}

type CallStmtData struct {
	Call ExprID // всегда ExprSuffixed, оканчивающийся вызовом
}

type DoData struct {
	Body BlockID
}

type WhileData struct {
	Cond ExprID
	Body BlockID
}

type RepeatData struct {
	Body BlockID
	Cond ExprID
}

type IfBranch struct {
	Cond ExprID
	Body BlockID
}

type IfData struct {
	Branches []IfBranch
	Else     BlockID
}

type NumericForData struct {
	Var   Binding
	Start ExprID
	Limit ExprID
	Step  ExprID // NoExprID, если шаг не указан
	Body  BlockID
}

type GenericForData struct {
	Vars  []Binding
	Exprs []ExprID
	Body  BlockID
}

// FunctionStmtData is `function a.b.c:m() end`.
type FunctionStmtData struct {
	Path   []Binding
	Method Binding // Name == NoStringID, если не метод
	Func   ExprID
}

type LocalFunctionData struct {
	Name Binding
	Func ExprID
}

type ReturnData struct {
	Exprs []ExprID
}

// TypeAliasData is `[export] type Name<...> = ...`; the type body is skipped.
type TypeAliasData struct {
	Name   Binding
	Export bool
}
