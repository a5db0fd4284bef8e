package parser

import (
	"rolint/internal/ast"
	"rolint/internal/token"
)

// Приоритеты бинарных операторов: (левый, правый).
// Правоассоциативные `..` и `^` имеют правый приоритет ниже левого.
type binPrec struct {
	left, right int
}

// унарные операторы связывают сильнее всех бинарных, кроме `^`
const precUnary = 8

var binaryOps = map[token.Kind]struct {
	op   ast.BinaryOp
	prec binPrec
}{
	token.KwOr:       {ast.BinOr, binPrec{1, 1}},
	token.KwAnd:      {ast.BinAnd, binPrec{2, 2}},
	token.Lt:         {ast.BinLt, binPrec{3, 3}},
	token.Gt:         {ast.BinGt, binPrec{3, 3}},
	token.LtEq:       {ast.BinLtEq, binPrec{3, 3}},
	token.GtEq:       {ast.BinGtEq, binPrec{3, 3}},
	token.TildeEq:    {ast.BinNotEq, binPrec{3, 3}},
	token.EqEq:       {ast.BinEq, binPrec{3, 3}},
	token.DotDot:     {ast.BinConcat, binPrec{5, 4}},
	token.Plus:       {ast.BinAdd, binPrec{6, 6}},
	token.Minus:      {ast.BinSub, binPrec{6, 6}},
	token.Star:       {ast.BinMul, binPrec{7, 7}},
	token.Slash:      {ast.BinDiv, binPrec{7, 7}},
	token.SlashSlash: {ast.BinFloorDiv, binPrec{7, 7}},
	token.Percent:    {ast.BinMod, binPrec{7, 7}},
	token.Caret:      {ast.BinPow, binPrec{10, 9}},
}

// binaryOperator возвращает оператор и приоритет для токена
func binaryOperator(kind token.Kind) (ast.BinaryOp, binPrec, bool) {
	e, ok := binaryOps[kind]
	return e.op, e.prec, ok
}

// unaryOperator возвращает тип унарного оператора для токена
func unaryOperator(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.KwNot:
		return ast.UnNot, true
	case token.Minus:
		return ast.UnNeg, true
	case token.Hash:
		return ast.UnLen, true
	default:
		return ast.UnNot, false // не унарный оператор
	}
}

// compoundOperator отображает `+=` и пр. на базовый бинарный оператор
func compoundOperator(kind token.Kind) (ast.BinaryOp, bool) {
	switch kind {
	case token.PlusAssign:
		return ast.BinAdd, true
	case token.MinusAssign:
		return ast.BinSub, true
	case token.StarAssign:
		return ast.BinMul, true
	case token.SlashAssign:
		return ast.BinDiv, true
	case token.SlashSlashAssign:
		return ast.BinFloorDiv, true
	case token.PercentAssign:
		return ast.BinMod, true
	case token.CaretAssign:
		return ast.BinPow, true
	case token.DotDotAssign:
		return ast.BinConcat, true
	}
	return ast.BinAdd, false
}
