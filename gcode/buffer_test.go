package gcode

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlocksReader(t *testing.T) {
	blocks := []Block{
		NewBlock(false, []Chunk{IntWord('G', 1), FloatWord('X', 2)}),
		NewBlock(false, []Chunk{IntWord('M', 2)}),
	}

	gr := &BlocksReader{Blocks: blocks}

	b, err := gr.Read()
	assert.NoError(t, err)
	assert.True(t, b.Equals(blocks[0]))

	b, err = gr.Read()
	assert.NoError(t, err)
	assert.True(t, b.Equals(blocks[1]))

	_, err = gr.Read()
	assert.Equal(t, io.EOF, err)
}

func TestBuffer_Read(t *testing.T) {
	blocks := []Block{
		NewBlock(false, []Chunk{IntWord('G', 1), FloatWord('X', 2)}),
		NewBlock(false, []Chunk{IntWord('M', 2)}),
	}

	b := NewBuffer(&BlocksReader{Blocks: blocks})

	buf := make([]byte, 32)
	n, err := b.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, []byte("G1 X2 \nM2 \n"), buf[:n])

	n, err = b.Read(buf)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, n)
}
