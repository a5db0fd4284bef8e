// Package roblox holds lint rules specific to Roblox-flavored Luau.
package roblox

import (
	"rolint/internal/ast"
	"rolint/internal/lint"
)

// IncorrectRoactUsageName is the rule identifier used in configuration and output.
const IncorrectRoactUsageName = "roblox_incorrect_roact_usage"

// IncorrectRoactUsage checks Roact.createElement calls: the class name must
// exist and every named property or Roact.Event key must belong to that class.
type IncorrectRoactUsage struct{}

func NewIncorrectRoactUsage() lint.Rule {
	return IncorrectRoactUsage{}
}

func (IncorrectRoactUsage) Name() string { return IncorrectRoactUsageName }

func (IncorrectRoactUsage) Description() string {
	return "checks class names, properties and events passed to Roact.createElement"
}

func (IncorrectRoactUsage) Severity() lint.Severity { return lint.SeverityError }

func (IncorrectRoactUsage) Type() lint.Type { return lint.TypeCorrectness }

// Pass walks the tree once. Outside the Roblox dialect, or without class
// data, there is nothing to check against.
func (IncorrectRoactUsage) Pass(tree *lint.Tree, ctx *lint.Context) []lint.Diagnostic {
	if tree == nil || !ctx.IsRoblox() || ctx.ClassCount() == 0 {
		return nil
	}
	pass := &roactPass{
		tree:    tree,
		schema:  ctx.Schema,
		aliases: make(aliasSet),
	}
	ast.Walk(tree.AST, tree.Root, pass)
	return pass.out.diagnostics()
}

// roactPass is the per-invocation state: aliases seen so far and findings.
type roactPass struct {
	ast.BaseVisitor
	tree    *lint.Tree
	schema  lint.ClassSchema
	aliases aliasSet
	out     collector
}

func (r *roactPass) VisitCall(_ ast.ExprID, call *ast.SuffixedData) {
	if !r.matchesCall(call) {
		return
	}
	_, last, _ := call.Callee()
	r.checkCall(last)
}

// Register adds every rule of this package to reg.
func Register(reg *lint.Registry) {
	reg.Register(NewIncorrectRoactUsage)
}
