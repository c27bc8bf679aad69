package gcode

import (
	"encoding/json"
	"fmt"
)

// JSON interchange form. Chunks are type-tagged objects so consumers (and
// the stream client) can round-trip the exact variant.

type addressJSON struct {
	Kind  string      `json:"kind"`
	Value json.Number `json:"value"`
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{Kind: a.kind.String(), Value: json.Number(a.String())})
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var raw addressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case "int":
		v, err := raw.Value.Int64()
		if err != nil {
			return err
		}
		*a = IntAddress(int(v))
	case "float":
		f, err := raw.Value.Float64()
		if err != nil {
			return err
		}
		*a = FloatAddress(f)
	default:
		return fmt.Errorf("unknown address kind %q", raw.Kind)
	}
	return nil
}

type chunkJSON struct {
	Type    string   `json:"type"`
	Left    string   `json:"left,omitempty"`
	Right   string   `json:"right,omitempty"`
	Text    string   `json:"text,omitempty"`
	Letter  string   `json:"letter,omitempty"`
	Address *Address `json:"address,omitempty"`
	Char    string   `json:"char,omitempty"`
}

func marshalChunk(c Chunk) chunkJSON {
	switch c := c.(type) {
	case Comment:
		return chunkJSON{Type: "comment", Left: string(c.Left), Right: string(c.Right), Text: c.Text}
	case WordAddress:
		a := c.Address
		return chunkJSON{Type: "word_address", Letter: string(c.Letter), Address: &a}
	case Percent:
		return chunkJSON{Type: "percent"}
	case Word:
		return chunkJSON{Type: "word", Char: string(c.Char)}
	}
	return chunkJSON{}
}

func (c chunkJSON) chunk() (Chunk, error) {
	switch c.Type {
	case "comment":
		if len(c.Left) != 1 || len(c.Right) != 1 {
			return nil, fmt.Errorf("comment delimiters must be single characters")
		}
		return Comment{Left: c.Left[0], Right: c.Right[0], Text: c.Text}, nil
	case "word_address":
		if len(c.Letter) != 1 || c.Address == nil {
			return nil, fmt.Errorf("word_address needs a letter and an address")
		}
		return WordAddress{Letter: c.Letter[0], Address: *c.Address}, nil
	case "percent":
		return Percent{}, nil
	case "word":
		if len(c.Char) != 1 {
			return nil, fmt.Errorf("word char must be a single character")
		}
		return Word{Char: c.Char[0]}, nil
	}
	return nil, fmt.Errorf("unknown chunk type %q", c.Type)
}

type blockJSON struct {
	N       *int        `json:"n,omitempty"`
	Deleted bool        `json:"deleted,omitempty"`
	Chunks  []chunkJSON `json:"chunks"`
	Text    string      `json:"text,omitempty"`
}

func (b Block) MarshalJSON() ([]byte, error) {
	raw := blockJSON{Deleted: b.deleted, Text: b.text}
	if b.hasLineNumber {
		n := b.lineNumber
		raw.N = &n
	}
	raw.Chunks = make([]chunkJSON, len(b.chunks))
	for i, c := range b.chunks {
		raw.Chunks[i] = marshalChunk(c)
	}
	return json.Marshal(raw)
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var chunks []Chunk
	for _, rc := range raw.Chunks {
		c, err := rc.chunk()
		if err != nil {
			return err
		}
		chunks = append(chunks, c)
	}

	var blk Block
	if raw.N != nil {
		blk = NewNumberedBlock(*raw.N, raw.Deleted, chunks)
	} else {
		blk = NewBlock(raw.Deleted, chunks)
	}
	if raw.Text != "" {
		blk = blk.WithText(raw.Text)
	}
	*b = blk
	return nil
}
