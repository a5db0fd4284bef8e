package roblox

import (
	"rolint/internal/ast"
	"rolint/internal/lint"
)

// checkFields checks `name = v` against properties and
// `[Roact.Event.X] = v` against events. Other keys are not ours to judge.
func (r *roactPass) checkFields(className string, class lint.ClassDescriptor, table *ast.TableData) {
	for i := range table.Fields {
		f := &table.Fields[i]
		switch f.Kind {
		case ast.FieldNameKey:
			prop := r.tree.Name(f.Name)
			if !class.HasProperty(prop) {
				r.out.invalidProperty(className, prop, f.NameSpan)
			}
		case ast.FieldExprKey:
			event, ok := r.eventKey(f.Key)
			if ok && !class.HasEvent(event) {
				r.out.invalidEvent(className, event, f.Brackets)
			}
		case ast.FieldPositional:
			// дети элемента, не свойства
		}
	}
}
