package parser

import (
	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/token"
)

// parseStmt разбирает один statement. Возвращаемый StmtID может быть валидным
// и при ok=false: частично разобранный узел лучше, чем ничего.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwLocal:
		return p.parseLocalStmt()
	case token.KwFunction:
		return p.parseFunctionStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwRepeat:
		return p.parseRepeatStmt()
	case token.KwBreak:
		p.advance()
		return p.arenas.Stmts.NewBreak(tok.Span), true
	case token.Ident:
		switch tok.Text {
		case token.SoftContinue, token.SoftType, token.SoftExport:
			return p.parseSoftStmt()
		}
		return p.parseExprStmt()
	case token.LParen:
		return p.parseExprStmt()
	default:
		p.err(diag.SynUnexpectedToken, "unexpected "+describe(tok)+", expected statement")
		return ast.NoStmtID, false
	}
}

// parseSoftStmt - `continue`, `type X = ...`, `export type X = ...`.
// Это контекстные слова: `type(x)` и `continue = 1` остаются обычным кодом.
func (p *Parser) parseSoftStmt() (ast.StmtID, bool) {
	word := p.advance()
	switch word.Text {
	case token.SoftContinue:
		if !continuesExpr(p.lx.Peek().Kind) {
			dialect.RecordSyntax(p.opts.DialectEvidence, "luau `continue` statement", word)
			return p.arenas.Stmts.NewContinue(word.Span), true
		}
	case token.SoftType:
		if p.at(token.Ident) {
			return p.parseTypeAlias(word, false)
		}
	case token.SoftExport:
		if p.lx.Peek().IsSoft(token.SoftType) {
			p.advance()
			return p.parseTypeAlias(word, true)
		}
	}
	id, ok := p.parseSuffixes(p.nameExpr(word))
	return p.finishExprStmt(id, ok)
}

// continuesExpr - может ли токен продолжать выражение после идентификатора.
func continuesExpr(k token.Kind) bool {
	switch k {
	case token.LParen, token.Dot, token.LBracket, token.Colon, token.StringLit,
		token.LBrace, token.Assign, token.Comma:
		return true
	}
	_, compound := compoundOperator(k)
	return compound
}

func (p *Parser) parseTypeAlias(start token.Token, export bool) (ast.StmtID, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.Lt) && !p.skipBalanced(token.Lt, token.Gt) {
		return ast.NoStmtID, false
	}
	if _, ok = p.expect(token.Assign, diag.SynExpectEquals, "expected '=' in type alias"); !ok {
		return ast.NoStmtID, false
	}
	_, ok = p.skipType()
	dialect.RecordSyntax(p.opts.DialectEvidence, "luau type alias", start)
	id := p.arenas.Stmts.NewTypeAlias(start.Span.Cover(p.lastSpan), ast.TypeAliasData{
		Name:   name,
		Export: export,
	})
	return id, ok
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	id, ok := p.parseSuffixedExpr()
	return p.finishExprStmt(id, ok)
}

// finishExprStmt решает, чем является разобранный prefixexp:
// присваиванием, составным присваиванием или вызовом.
func (p *Parser) finishExprStmt(id ast.ExprID, ok bool) (ast.StmtID, bool) {
	span := p.exprSpan(id)
	if !ok {
		if _, isCall := p.arenas.Exprs.Call(id); isCall {
			return p.arenas.Stmts.NewCall(span, id), false
		}
		return ast.NoStmtID, false
	}

	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Assign || tok.Kind == token.Comma:
		return p.parseAssign(id)
	case tok.IsCompoundAssign():
		return p.parseCompoundAssign(id)
	}
	if _, isCall := p.arenas.Exprs.Call(id); isCall {
		return p.arenas.Stmts.NewCall(span, id), true
	}
	p.errAt(diag.SynUnexpectedToken, span, "syntax error: expression is not a statement")
	return ast.NoStmtID, false
}

// checkAssignTarget - присваивать можно имени, `a.b` или `a[b]`.
func (p *Parser) checkAssignTarget(id ast.ExprID) bool {
	if _, ok := p.arenas.Exprs.Name(id); ok {
		return true
	}
	if s, ok := p.arenas.Exprs.Suffixed(id); ok && !s.IsCall() {
		return true
	}
	p.errAt(diag.SynBadAssignTarget, p.exprSpan(id), "cannot assign to this expression")
	return false
}

func (p *Parser) parseAssign(first ast.ExprID) (ast.StmtID, bool) {
	targets := []ast.ExprID{first}
	ok := p.checkAssignTarget(first)
	for p.at(token.Comma) {
		p.advance()
		target, targetOK := p.parseSuffixedExpr()
		if !targetOK {
			return ast.NoStmtID, false
		}
		ok = p.checkAssignTarget(target) && ok
		targets = append(targets, target)
	}
	if _, eq := p.expect(token.Assign, diag.SynExpectEquals, "expected '=' in assignment"); !eq {
		return ast.NoStmtID, false
	}
	exprs, xok := p.parseExprList()
	id := p.arenas.Stmts.NewAssign(p.exprSpan(first).Cover(p.lastSpan), ast.AssignData{
		Targets: targets,
		Exprs:   exprs,
	})
	return id, ok && xok
}

func (p *Parser) parseCompoundAssign(target ast.ExprID) (ast.StmtID, bool) {
	opTok := p.advance()
	op, _ := compoundOperator(opTok.Kind)
	ok := p.checkAssignTarget(target)
	value, vok := p.parseExpr()
	id := p.arenas.Stmts.NewCompoundAssign(p.exprSpan(target).Cover(p.lastSpan), ast.CompoundAssignData{
		Op:     op,
		Target: target,
		Value:  value,
	})
	return id, ok && vok
}

// parseLocalStmt - `local a: T, b = x, y` или `local function f() end`.
func (p *Parser) parseLocalStmt() (ast.StmtID, bool) {
	localTok := p.advance()

	if p.at(token.KwFunction) {
		fnTok := p.advance()
		name, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		fn, ok := p.parseFuncBody(fnTok)
		id := p.arenas.Stmts.NewLocalFunction(localTok.Span.Cover(p.lastSpan), ast.LocalFunctionData{
			Name: name,
			Func: fn,
		})
		return id, ok
	}

	var data ast.LocalData
	for {
		name, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Names = append(data.Names, name)
		if p.at(token.Colon) {
			p.advance()
			if _, ok := p.skipType(); !ok {
				return ast.NoStmtID, false
			}
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	ok := true
	if p.at(token.Assign) {
		p.advance()
		data.Exprs, ok = p.parseExprList()
	}
	return p.arenas.Stmts.NewLocal(localTok.Span.Cover(p.lastSpan), data), ok
}

// parseFunctionStmt - `function a.b.c:m(...) end`.
func (p *Parser) parseFunctionStmt() (ast.StmtID, bool) {
	fnTok := p.advance()

	first, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	data := ast.FunctionStmtData{Path: []ast.Binding{first}}
	for p.at(token.Dot) {
		p.advance()
		part, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Path = append(data.Path, part)
	}
	if p.at(token.Colon) {
		p.advance()
		if data.Method, ok = p.parseIdent(); !ok {
			return ast.NoStmtID, false
		}
	}

	data.Func, ok = p.parseFuncBody(fnTok)
	return p.arenas.Stmts.NewFunction(fnTok.Span.Cover(p.lastSpan), data), ok
}

// parseReturnStmt - `return [exprlist] [;]`.
func (p *Parser) parseReturnStmt() ast.StmtID {
	retTok := p.advance()
	var exprs []ast.ExprID
	if !blockEnd(p.lx.Peek().Kind) && !p.at(token.Semicolon) {
		exprs, _ = p.parseExprList()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	return p.arenas.Stmts.NewReturn(retTok.Span.Cover(p.lastSpan), exprs)
}
