package lint

import (
	"rolint/internal/diag"
	"rolint/internal/source"
)

// Run executes every rule over the tree and forwards findings to rep with the
// rule's severity and diagnostic code. Rules at SeverityAllow are skipped.
// It returns the number of findings forwarded.
func Run(tree *Tree, ctx *Context, rules []Rule, rep diag.Reporter) int {
	if tree == nil || rep == nil {
		return 0
	}
	total := 0
	for _, rule := range rules {
		sev := rule.Severity()
		if sev == SeverityAllow {
			continue
		}
		for _, d := range rule.Pass(tree, ctx) {
			code, ok := diag.LintCode(d.Code)
			if !ok {
				code = diag.LintInfo
			}
			primary := source.Span{File: tree.Source, Start: d.Primary.Start, End: d.Primary.End}
			var notes []diag.Note
			for _, n := range d.Notes {
				notes = append(notes, diag.Note{Span: primary, Msg: n})
			}
			rep.Report(code, sev.Diag(), primary, d.Message, notes)
			total++
		}
	}
	return total
}
