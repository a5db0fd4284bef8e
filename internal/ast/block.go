package ast

import (
	"rolint/internal/source"
)

// Block is a statement list with its own lexical scope.
type Block struct {
	Span  source.Span
	Stmts []StmtID
}

type Blocks struct {
	Arena *Arena[Block]
}

func NewBlocks(capHint uint) *Blocks {
	return &Blocks{Arena: NewArena[Block](capHint)}
}

func (b *Blocks) New(sp source.Span, stmts []StmtID) BlockID {
	return BlockID(b.Arena.Allocate(Block{Span: sp, Stmts: stmts}))
}

func (b *Blocks) Get(id BlockID) *Block {
	return b.Arena.Get(uint32(id))
}
