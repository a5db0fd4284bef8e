package roblox

import (
	"rolint/internal/ast"
)

const (
	roactGlobal   = "Roact"
	createElement = "createElement"
	eventTable    = "Event"
)

// matchesCall reports whether the call invokes Roact.createElement, either
// spelled out or through a recorded alias. `(Roact).createElement`,
// `Roact["createElement"]` and method calls are not matched.
func (r *roactPass) matchesCall(call *ast.SuffixedData) bool {
	head, _, ok := call.Callee()
	if !ok {
		return false
	}
	switch len(head) {
	case 0:
		name, ok := r.tree.AST.Exprs.Name(call.Prefix)
		return ok && r.aliases.has(name.Name)
	case 1:
		return r.isCreateElement(call.Prefix, head)
	}
	return false
}

// isCreateElement is the exact shape `Roact.createElement`: a Roact name
// followed by one dot index.
func (r *roactPass) isCreateElement(prefix ast.ExprID, suffixes []ast.Suffix) bool {
	if len(suffixes) != 1 || suffixes[0].Kind != ast.SuffixDot {
		return false
	}
	name, ok := r.tree.AST.Exprs.Name(prefix)
	if !ok {
		return false
	}
	in := r.tree.AST.StringsInterner
	return in.Is(name.Name, roactGlobal) && in.Is(suffixes[0].Name, createElement)
}

// eventKey matches `Roact.Event.<Name>` after stripping parentheses and
// returns the event name.
func (r *roactPass) eventKey(key ast.ExprID) (string, bool) {
	exprs := r.tree.AST.Exprs
	s, ok := exprs.Suffixed(exprs.StripParens(key))
	if !ok || len(s.Suffixes) != 2 {
		return "", false
	}
	name, ok := exprs.Name(s.Prefix)
	if !ok {
		return "", false
	}
	ns, ev := s.Suffixes[0], s.Suffixes[1]
	if ns.Kind != ast.SuffixDot || ev.Kind != ast.SuffixDot {
		return "", false
	}
	in := r.tree.AST.StringsInterner
	if !in.Is(name.Name, roactGlobal) || !in.Is(ns.Name, eventTable) {
		return "", false
	}
	return r.tree.Name(ev.Name), true
}
