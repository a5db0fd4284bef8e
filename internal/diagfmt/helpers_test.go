package diagfmt

import (
	"strings"
	"testing"

	"rolint/internal/diag"
	"rolint/internal/source"
)

const uiSource = "local e = Roact.createElement(\"Frame\", {\n\tText = \"x\",\n})\n"

// uiBag возвращает FileSet с одним файлом и bag с одной lint-ошибкой на `Text`.
func uiBag(t *testing.T, path string) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(uiSource))
	start := uint32(strings.Index(uiSource, "Text"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LintIncorrectRoactUsage,
		source.Span{File: id, Start: start, End: start + 4},
		"`Text` is not a property of `Frame`"))
	return fs, bag
}
