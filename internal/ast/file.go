package ast

import (
	"rolint/internal/dialect"
	"rolint/internal/source"
)

// File is the root of one parsed Lua chunk.
type File struct {
	Span source.Span
	Body BlockID
	// DialectEvidence: сигналы Lua 5.1 / Luau, собранные парсером. На дерево не влияют.
	DialectEvidence *dialect.Evidence
}

// Source is the FileSet entry this chunk was parsed from.
func (f *File) Source() source.FileID { return f.Span.File }

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
