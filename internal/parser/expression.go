package parser

import (
	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/source"
	"rolint/internal/token"
)

// parseExpr - входная точка для разбора выражений.
// Всегда возвращает валидный ExprID (на ошибке - ExprError), ok=false если были ошибки.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseSubExpr(0)
}

// parseSubExpr - precedence climbing: разбирает операнд и все бинарные
// операторы с левым приоритетом строго больше limit.
func (p *Parser) parseSubExpr(limit int) (ast.ExprID, bool) {
	var (
		left ast.ExprID
		ok   bool
	)
	if op, isUnary := unaryOperator(p.lx.Peek().Kind); isUnary {
		opTok := p.advance()
		var operand ast.ExprID
		operand, ok = p.parseSubExpr(precUnary)
		left = p.arenas.Exprs.NewUnary(opTok.Span.Cover(p.exprSpan(operand)), op, operand)
	} else {
		left, ok = p.parseSimpleExpr()
	}
	if !ok {
		return left, false
	}
	return p.parseBinaryRest(left, limit)
}

func (p *Parser) parseBinaryRest(left ast.ExprID, limit int) (ast.ExprID, bool) {
	for {
		op, prec, isBinary := binaryOperator(p.lx.Peek().Kind)
		if !isBinary || prec.left <= limit {
			return left, true
		}
		opTok := p.advance()
		right, ok := p.parseSubExpr(prec.right)
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, op, opTok.Span, left, right)
		if !ok {
			return left, false
		}
	}
}

// parseSimpleExpr - литералы, конструкторы и suffixed-выражения,
// плюс хвостовые Luau-утверждения типа `:: T`.
func (p *Parser) parseSimpleExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	exprs := p.arenas.Exprs

	var (
		id ast.ExprID
		ok = true
	)
	switch tok.Kind {
	case token.NumberLit:
		p.advance()
		id = exprs.NewLiteral(ast.ExprNumber, tok.Span, ast.LiteralData{Raw: p.intern(tok.Text)})
	case token.StringLit:
		id = p.parseStringLit()
	case token.KwNil:
		p.advance()
		id = exprs.NewLiteral(ast.ExprNil, tok.Span, ast.LiteralData{Raw: p.intern(tok.Text)})
	case token.KwTrue, token.KwFalse:
		p.advance()
		id = exprs.NewLiteral(ast.ExprBool, tok.Span, ast.LiteralData{
			Raw:  p.intern(tok.Text),
			Bool: tok.Kind == token.KwTrue,
		})
	case token.DotDotDot:
		p.advance()
		if !p.varargAllowed() {
			p.errAt(diag.SynVarargOutsideVarFn, tok.Span, "cannot use '...' outside a vararg function")
		}
		id = exprs.NewVararg(tok.Span)
	case token.InterpStringLit:
		p.advance()
		id = exprs.NewInterp(tok.Span, p.intern(tok.Text))
	case token.LBrace:
		id, ok = p.parseTable()
	case token.KwFunction:
		p.advance()
		id, ok = p.parseFuncBody(tok)
	case token.KwIf:
		id, ok = p.parseIfElseExpr()
	default:
		id, ok = p.parseSuffixedExpr()
	}
	if !ok {
		return id, false
	}
	return p.parseAsserts(id)
}

// parseAsserts - `expr :: T :: U`; сам тип пропускаем.
func (p *Parser) parseAsserts(id ast.ExprID) (ast.ExprID, bool) {
	for p.at(token.ColonColon) {
		p.advance()
		typeSpan, ok := p.skipType()
		id = p.arenas.Exprs.NewTypeAssert(p.exprSpan(id).Cover(typeSpan), id, typeSpan)
		if !ok {
			return id, false
		}
	}
	return id, true
}

// parseExprFromName продолжает выражение, первый идентификатор которого уже съеден.
func (p *Parser) parseExprFromName(nameTok token.Token) (ast.ExprID, bool) {
	id, ok := p.parseSuffixes(p.nameExpr(nameTok))
	if !ok {
		return id, false
	}
	if id, ok = p.parseAsserts(id); !ok {
		return id, false
	}
	return p.parseBinaryRest(id, 0)
}

func (p *Parser) parseExprList() ([]ast.ExprID, bool) {
	first, ok := p.parseExpr()
	list := []ast.ExprID{first}
	for ok && p.at(token.Comma) {
		p.advance()
		var next ast.ExprID
		next, ok = p.parseExpr()
		list = append(list, next)
	}
	return list, ok
}

// parseIfElseExpr - Luau `if c then a elseif d then b else e`.
func (p *Parser) parseIfElseExpr() (ast.ExprID, bool) {
	ifTok := p.advance()
	var data ast.IfElseData

	branch := func() bool {
		cond, ok := p.parseExpr()
		if !ok {
			return false
		}
		if _, ok = p.expect(token.KwThen, diag.SynExpectThen, "expected 'then' in if-expression"); !ok {
			return false
		}
		value, ok := p.parseExpr()
		data.Branches = append(data.Branches, ast.IfElseBranch{Cond: cond, Value: value})
		return ok
	}

	ok := branch()
	for ok && p.at(token.KwElseif) {
		p.advance()
		ok = branch()
	}
	if ok {
		// else в if-выражении обязателен
		if _, ok = p.expect(token.KwElse, diag.SynUnexpectedToken, "expected 'else' in if-expression"); ok {
			data.Else, ok = p.parseExpr()
		}
	}
	id := p.arenas.Exprs.NewIfElse(ifTok.Span.Cover(p.lastSpan), data)
	return id, ok
}

func (p *Parser) parseStringLit() ast.ExprID {
	tok := p.advance()
	data := ast.LiteralData{Raw: p.intern(tok.Text)}
	if body, _, _ := ast.StringBody(tok.Text); body != "" {
		data.Body = p.intern(body)
	}
	if value, ok := ast.DecodeString(tok.Text); ok {
		data.Value = p.intern(value)
	}
	return p.arenas.Exprs.NewLiteral(ast.ExprString, tok.Span, data)
}

func (p *Parser) nameExpr(tok token.Token) ast.ExprID {
	return p.arenas.Exprs.NewName(tok.Span, p.intern(tok.Text))
}

func (p *Parser) intern(s string) source.StringID {
	return p.arenas.StringsInterner.Intern(s)
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}

// errorExpr - заглушка на месте выражения, которое не удалось разобрать.
func (p *Parser) errorExpr(code diag.Code, msg string) ast.ExprID {
	sp := p.getDiagnosticSpan()
	p.errAt(code, sp, msg)
	return p.arenas.Exprs.NewError(sp)
}
