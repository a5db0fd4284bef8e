package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rolint/internal/ast"
	"rolint/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span lies within file content bounds
// 2) every statement span is non-empty and fully contained in file.Span
// 3) every expression span is contained in file.Span
// 4) suffixed expressions contain their prefix and every suffix;
// table constructors contain their fields
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	// 1) file span sanity
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent || f.Span.Start > f.Span.End {
		return fmt.Errorf("file span %v out of content bounds [0,%d]", f.Span, lenContent)
	}

	inside := func(what string, sp source.Span) error {
		if sp.File != sf.ID {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sf.ID)
		}
		if sp.Start > sp.End {
			return fmt.Errorf("%s span is inverted: %v", what, sp)
		}
		if !f.Span.Contains(sp) {
			return fmt.Errorf("%s span %v is outside file span %v", what, sp, f.Span)
		}
		return nil
	}

	// 2) statements
	for i, st := range b.Stmts.Arena.Slice() {
		if st.Span.Empty() {
			return fmt.Errorf("empty %s statement span (id=%d)", st.Kind, i+1)
		}
		if err := inside(st.Kind.String()+" statement", st.Span); err != nil {
			return err
		}
	}

	// 3) + 4) expressions
	for i, ex := range b.Exprs.Arena.Slice() {
		raw, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return fmt.Errorf("expression index overflow: %w", err)
		}
		id := ast.ExprID(raw)
		if err := inside(ex.Kind.String()+" expression", ex.Span); err != nil {
			return err
		}
		if err := checkChildren(b, id, ex.Span); err != nil {
			return err
		}
	}
	return nil
}

func checkChildren(b *ast.Builder, id ast.ExprID, parent source.Span) error {
	contains := func(what string, sp source.Span) error {
		if !parent.Contains(sp) {
			return fmt.Errorf("%s span %v escapes parent %v", what, sp, parent)
		}
		return nil
	}
	exprSpan := func(child ast.ExprID) source.Span {
		if e := b.Exprs.Get(child); e != nil {
			return e.Span
		}
		return parent
	}

	if s, ok := b.Exprs.Suffixed(id); ok {
		if err := contains("prefix", exprSpan(s.Prefix)); err != nil {
			return err
		}
		for _, sfx := range s.Suffixes {
			if err := contains(sfx.Kind.String()+" suffix", sfx.Span); err != nil {
				return err
			}
		}
	}
	if t, ok := b.Exprs.Table(id); ok {
		for _, fld := range t.Fields {
			if err := contains(fld.Kind.String()+" field", fld.Span); err != nil {
				return err
			}
		}
	}
	return nil
}
