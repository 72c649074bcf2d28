package document

import "pzg/style"

// BlockKind discriminates Block variants.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockPageBreak
	BlockTable
)

// Block is one unit of document content in reading order. Exactly one of the
// variant pointers matching Kind is set (page breaks carry no payload).
// Blocks are immutable once appended.
type Block struct {
	Kind      BlockKind
	Paragraph *Paragraph
	Table     *Table
}

// Paragraph is any single-run text block - headings, body text, list items,
// TOC and reference entries all end up here with their style resolved at
// append time. Text may contain tab characters, the serializer turns them
// into proper tab nodes.
type Paragraph struct {
	Text  string
	Style style.Record
}

// Table is a rectangular grid with one bold header row. Cells render as
// plain single-line text in the document's base typography.
type Table struct {
	Header []string
	Rows   [][]string
}
