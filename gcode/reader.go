package gcode

import "io"

// Reader yields blocks until io.EOF.
type Reader interface {
	Read() (Block, error)
}

// BlocksReader replays an in-memory block sequence.
type BlocksReader struct {
	Blocks []Block
	n      int
}

func (b *BlocksReader) Read() (Block, error) {
	if b.n == len(b.Blocks) {
		return Block{}, io.EOF
	}

	b.n++
	return b.Blocks[b.n-1], nil
}
