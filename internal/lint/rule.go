package lint

// Rule is a single check over a parsed file.
type Rule interface {
	// Name is the snake_case identifier used in configuration and output.
	Name() string
	Description() string
	Severity() Severity
	Type() Type
	// Pass inspects the tree. It must be a pure function of (tree, ctx).
	Pass(tree *Tree, ctx *Context) []Diagnostic
}

// Constructor builds a rule. Rules take no options, so construction cannot fail.
type Constructor func() Rule

// WithSeverity wraps a rule so it reports at sev instead of its default.
func WithSeverity(r Rule, sev Severity) Rule {
	if r.Severity() == sev {
		return r
	}
	return severityOverride{Rule: r, sev: sev}
}

type severityOverride struct {
	Rule
	sev Severity
}

func (o severityOverride) Severity() Severity { return o.sev }
