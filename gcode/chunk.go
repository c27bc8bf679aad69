package gcode

// Chunk is one lexical element of a block: a comment, a word address, the
// bare % marker, or an isolated single-character word.
type Chunk interface {
	String() string

	// Equals is content-exact; chunks of different variants are never equal.
	Equals(Chunk) bool
}

// Comment holds the text between a delimiter pair. Text excludes the
// delimiters. Left/Right are '(' and ')', '[' and ']', or ';' and ';' for
// end-of-line comments.
type Comment struct {
	Left  byte
	Right byte
	Text  string
}

func (c Comment) String() string {
	return string(c.Left) + c.Text + string(c.Right)
}

func (c Comment) Equals(o Chunk) bool {
	oc, ok := o.(Comment)
	return ok && oc == c
}

// WordAddress is a letter immediately followed by a numeric value, e.g. G1
// or X10.5. Letter case is preserved as lexed.
type WordAddress struct {
	Letter  byte
	Address Address
}

func (w WordAddress) String() string {
	return string(w.Letter) + w.Address.String()
}

func (w WordAddress) Equals(o Chunk) bool {
	ow, ok := o.(WordAddress)
	return ok && ow == w
}

// Percent is the bare % program marker. Any two Percent chunks are equal.
type Percent struct{}

func (Percent) String() string { return "%" }

func (Percent) Equals(o Chunk) bool {
	_, ok := o.(Percent)
	return ok
}

// Word is a standalone single character with no value attached.
type Word struct {
	Char byte
}

func (w Word) String() string { return string(w.Char) }

func (w Word) Equals(o Chunk) bool {
	ow, ok := o.(Word)
	return ok && ow == w
}

func IntWord(letter byte, v int) WordAddress {
	return WordAddress{Letter: letter, Address: IntAddress(v)}
}
func FloatWord(letter byte, v float64) WordAddress {
	return WordAddress{Letter: letter, Address: FloatAddress(v)}
}
