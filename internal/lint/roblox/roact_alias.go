package roblox

import (
	"rolint/internal/ast"
	"rolint/internal/source"
)

// aliasSet holds local names bound to Roact.createElement. It only grows:
// shadowing or reassignment does not remove a name.
// TODO: track block scopes through EnterBlock/LeaveBlock so `do local e = Roact.createElement end` stops leaking.
type aliasSet map[source.StringID]struct{}

func (s aliasSet) add(id source.StringID) { s[id] = struct{}{} }

func (s aliasSet) has(id source.StringID) bool {
	_, ok := s[id]
	return ok
}

// VisitLocal pairs names with values by position; extra names are ignored.
func (r *roactPass) VisitLocal(_ ast.StmtID, local *ast.LocalData) {
	for i, name := range local.Names {
		if i >= len(local.Exprs) {
			return
		}
		if r.isCreateElementRef(local.Exprs[i]) {
			r.aliases.add(name.Name)
		}
	}
}

// isCreateElementRef is a bare reference, not a call: `Roact.createElement`.
func (r *roactPass) isCreateElementRef(id ast.ExprID) bool {
	s, ok := r.tree.AST.Exprs.Suffixed(id)
	return ok && r.isCreateElement(s.Prefix, s.Suffixes)
}
