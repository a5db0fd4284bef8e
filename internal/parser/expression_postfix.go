package parser

import (
	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/token"
)

// parseSuffixedExpr - prefixexp: Name или `(expr)`, за которыми идут
// `.name`, `[expr]`, `:m(args)` и вызовы.
func (p *Parser) parseSuffixedExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.parseSuffixes(p.nameExpr(tok))
	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if ok {
			_, ok = p.expectClose(token.RParen, diag.SynUnclosedParen, "expected ')' to close parenthesized expression", open)
		}
		paren := p.arenas.Exprs.NewParen(open.Span.Cover(p.lastSpan), inner)
		if !ok {
			return paren, false
		}
		return p.parseSuffixes(paren)
	default:
		return p.errorExpr(diag.SynExpectExpression, "expected expression, got "+describe(tok)), false
	}
}

// parseSuffixes навешивает цепочку суффиксов на уже разобранный prefix.
// Без суффиксов prefix возвращается как есть.
func (p *Parser) parseSuffixes(prefix ast.ExprID) (ast.ExprID, bool) {
	var suffixes []ast.Suffix
	ok := true

loop:
	for ok {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Dot:
			p.advance()
			var name ast.Binding
			if name, ok = p.parseIdent(); ok {
				suffixes = append(suffixes, ast.Suffix{
					Kind:     ast.SuffixDot,
					Span:     tok.Span.Cover(name.Span),
					Name:     name.Name,
					NameSpan: name.Span,
				})
			}
		case token.LBracket:
			p.advance()
			var index ast.ExprID
			index, ok = p.parseExpr()
			if ok {
				_, ok = p.expectClose(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close index", tok)
			}
			suffixes = append(suffixes, ast.Suffix{
				Kind:  ast.SuffixBracket,
				Span:  tok.Span.Cover(p.lastSpan),
				Index: index,
			})
		case token.Colon:
			p.advance()
			var name ast.Binding
			if name, ok = p.parseIdent(); !ok {
				break
			}
			var args ast.CallArgs
			args, ok = p.parseCallArgs()
			suffixes = append(suffixes, ast.Suffix{
				Kind:     ast.SuffixMethod,
				Span:     tok.Span.Cover(p.lastSpan),
				Name:     name.Name,
				NameSpan: name.Span,
				Args:     args,
			})
		case token.LParen, token.StringLit, token.LBrace:
			var args ast.CallArgs
			args, ok = p.parseCallArgs()
			suffixes = append(suffixes, ast.Suffix{
				Kind: ast.SuffixCall,
				Span: args.Span,
				Args: args,
			})
		default:
			break loop
		}
	}

	if len(suffixes) == 0 {
		return prefix, ok
	}
	span := p.exprSpan(prefix).Cover(p.lastSpan)
	return p.arenas.Exprs.NewSuffixed(span, prefix, suffixes), ok
}

// parseCallArgs - `(a, b)`, `"str"` или `{...}`.
func (p *Parser) parseCallArgs() (ast.CallArgs, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.StringLit:
		id := p.parseStringLit()
		return ast.CallArgs{Kind: ast.ArgsString, Span: tok.Span, List: []ast.ExprID{id}}, true
	case token.LBrace:
		id, ok := p.parseTable()
		return ast.CallArgs{Kind: ast.ArgsTable, Span: p.exprSpan(id), List: []ast.ExprID{id}}, ok
	case token.LParen:
		open := p.advance()
		var (
			list []ast.ExprID
			ok   = true
		)
		if !p.at(token.RParen) {
			list, ok = p.parseExprList()
		}
		if ok {
			_, ok = p.expectClose(token.RParen, diag.SynUnclosedParen, "expected ')' to close argument list", open)
		}
		return ast.CallArgs{Kind: ast.ArgsParens, Span: open.Span.Cover(p.lastSpan), List: list}, ok
	default:
		sp := p.getDiagnosticSpan()
		p.errAt(diag.SynUnexpectedToken, sp, "expected function arguments, got "+describe(tok))
		return ast.CallArgs{Kind: ast.ArgsParens, Span: sp}, false
	}
}
