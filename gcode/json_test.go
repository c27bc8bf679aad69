package gcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON_RoundTrip(t *testing.T) {
	p, err := ParseWithBlockText("%\n/N10 G1 (rough) X2.5 ; eol\nM30\n")
	assert.NoError(t, err)

	data, err := json.Marshal(p)
	assert.NoError(t, err)

	var p2 Program
	err = json.Unmarshal(data, &p2)
	assert.NoError(t, err)
	assert.True(t, p.Equals(p2))
	assert.Equal(t, p[1].Text(), p2[1].Text())
	assert.True(t, p2[1].Deleted())
}

func TestJSON_ChunkTags(t *testing.T) {
	b := NewBlock(false, []Chunk{
		Percent{},
		Comment{Left: '(', Right: ')', Text: "hi"},
		FloatWord('X', 1.5),
		Word{Char: '*'},
	})

	data, err := json.Marshal(b)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"type":"percent"`)
	assert.Contains(t, string(data), `"type":"comment"`)
	assert.Contains(t, string(data), `"type":"word_address"`)
	assert.Contains(t, string(data), `"type":"word"`)
	assert.Contains(t, string(data), `"kind":"float"`)
}

func TestJSON_AddressKind(t *testing.T) {
	data, err := json.Marshal(IntAddress(5))
	assert.NoError(t, err)
	assert.Equal(t, `{"kind":"int","value":5}`, string(data))

	var a Address
	err = json.Unmarshal([]byte(`{"kind":"float","value":2.5}`), &a)
	assert.NoError(t, err)
	assert.True(t, a.Equals(FloatAddress(2.5)))

	err = json.Unmarshal([]byte(`{"kind":"bogus","value":1}`), &a)
	assert.Error(t, err)
}
