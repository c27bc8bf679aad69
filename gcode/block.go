package gcode

import (
	"strconv"
	"strings"
)

// Block is one structured line of a program: an optional N line number, a
// block-skip flag for lines prefixed with /, and the ordered chunks of the
// line. Blocks are values; nothing mutates one after the parser returns it.
type Block struct {
	lineNumber    int
	hasLineNumber bool
	deleted       bool
	chunks        []Chunk
	text          string
}

// NewBlock builds a block without a line number.
func NewBlock(deleted bool, chunks []Chunk) Block {
	return Block{deleted: deleted, chunks: chunks}
}

// NewNumberedBlock builds a block carrying an N line number.
func NewNumberedBlock(lineNumber int, deleted bool, chunks []Chunk) Block {
	return Block{lineNumber: lineNumber, hasLineNumber: true, deleted: deleted, chunks: chunks}
}

// WithText returns a copy of b with its retained text set. Used once, right
// after construction, by the text-preserving parse entry points.
func (b Block) WithText(text string) Block {
	b.text = text
	return b
}

// LineNumber returns the N number. ok is false when the line had none.
func (b Block) LineNumber() (n int, ok bool) {
	if !b.hasLineNumber {
		return 0, false
	}
	return b.lineNumber, true
}

// Deleted reports whether the line carried the / block-skip marker.
func (b Block) Deleted() bool { return b.deleted }

// Text returns the retained canonical text, or "" when parsing did not
// request it.
func (b Block) Text() string { return b.text }

func (b Block) Len() int { return len(b.chunks) }

func (b Block) Chunk(i int) Chunk { return b.chunks[i] }

// Chunks returns a copy of the chunk sequence in line order.
func (b Block) Chunks() []Chunk {
	c := make([]Chunk, len(b.chunks))
	copy(c, b.chunks)
	return c
}

// String renders the block: "N<n> " when numbered, then every chunk followed
// by a single space, including the last.
func (b Block) String() string {
	var sb strings.Builder
	if b.hasLineNumber {
		sb.WriteString("N")
		sb.WriteString(strconv.Itoa(b.lineNumber))
		sb.WriteString(" ")
	}
	for _, c := range b.chunks {
		sb.WriteString(c.String())
		sb.WriteString(" ")
	}
	return sb.String()
}

func (b Block) Equals(o Block) bool {
	if b.hasLineNumber != o.hasLineNumber || b.deleted != o.deleted {
		return false
	}
	if b.hasLineNumber && b.lineNumber != o.lineNumber {
		return false
	}
	if len(b.chunks) != len(o.chunks) {
		return false
	}
	for i, c := range b.chunks {
		if !c.Equals(o.chunks[i]) {
			return false
		}
	}
	return true
}

// Program is an ordered sequence of blocks, one per non-empty source line.
type Program []Block

// String renders each block on its own line, in order.
func (p Program) String() string {
	var sb strings.Builder
	for _, b := range p {
		sb.WriteString(b.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p Program) Equals(o Program) bool {
	if len(p) != len(o) {
		return false
	}
	for i, b := range p {
		if !b.Equals(o[i]) {
			return false
		}
	}
	return true
}
