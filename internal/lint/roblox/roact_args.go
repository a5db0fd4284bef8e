package roblox

import (
	"rolint/internal/ast"
)

// checkCall validates a matched call. Only `f("Class", { ... })` with a
// literal class name is checked; string/table call sugar is skipped.
func (r *roactPass) checkCall(call *ast.Suffix) {
	if call.Kind != ast.SuffixCall || call.Args.Kind != ast.ArgsParens {
		return
	}
	args := call.Args.List
	if len(args) == 0 {
		return
	}

	exprs := r.tree.AST.Exprs
	lit, ok := exprs.StringLit(args[0])
	if !ok {
		return
	}
	// имя класса сверяется как написано: "" и "Fr\97me" - неизвестные классы
	className := r.tree.Name(lit.Body)

	class, ok := r.schema.Class(className)
	if !ok {
		r.out.unknownClass(className, exprs.Get(args[0]).Span)
		return
	}

	if len(args) < 2 {
		return
	}
	table, ok := exprs.Table(args[1])
	if !ok {
		return
	}
	r.checkFields(className, class, table)
}
