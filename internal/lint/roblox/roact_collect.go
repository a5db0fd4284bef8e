package roblox

import (
	"fmt"

	"rolint/internal/lint"
	"rolint/internal/source"
)

// collector keeps findings per kind. Output order is events, then
// properties, then unknown classes, each in encounter order.
type collector struct {
	events     []lint.Diagnostic
	properties []lint.Diagnostic
	classes    []lint.Diagnostic
}

func (c *collector) invalidEvent(className, event string, sp source.Span) {
	c.events = append(c.events, finding(fmt.Sprintf("`%s` is not a valid event for `%s`", event, className), sp))
}

func (c *collector) invalidProperty(className, prop string, sp source.Span) {
	c.properties = append(c.properties, finding(fmt.Sprintf("`%s` is not a property of `%s`", prop, className), sp))
}

func (c *collector) unknownClass(name string, sp source.Span) {
	c.classes = append(c.classes, finding(fmt.Sprintf("`%s` is not a valid class", name), sp))
}

func (c *collector) diagnostics() []lint.Diagnostic {
	n := len(c.events) + len(c.properties) + len(c.classes)
	if n == 0 {
		return nil
	}
	out := make([]lint.Diagnostic, 0, n)
	out = append(out, c.events...)
	out = append(out, c.properties...)
	return append(out, c.classes...)
}

func finding(msg string, sp source.Span) lint.Diagnostic {
	return lint.NewDiagnostic(IncorrectRoactUsageName, msg, lint.LabelAt(sp.Start, sp.End))
}
