package gcode

import (
	"strconv"
	"strings"
)

// tokenScanner is a cursor over one line's token sequence.
type tokenScanner struct {
	toks []string
	i    int
}

func (s *tokenScanner) left() int       { return len(s.toks) - s.i }
func (s *tokenScanner) next() string    { return s.toks[s.i] }
func (s *tokenScanner) at(n int) string { return s.toks[s.i+n] }
func (s *tokenScanner) advance()        { s.i++ }

// parseBlock assembles one line's tokens into a Block: optional leading /,
// optional N line number, then chunks until the tokens run out.
func parseBlock(tokens []string) (Block, error) {
	s := tokenScanner{toks: tokens}

	var deleted bool
	if s.left() > 0 && s.next() == "/" {
		deleted = true
		s.advance()
	}

	hasN := s.left() > 0 && s.next() == "N"
	var lineNumber int
	if hasN {
		s.advance()
		if s.left() == 0 {
			return Block{}, &ParseError{Token: "N", Err: ErrUnexpectedToken}
		}
		n, err := strconv.Atoi(s.next())
		if err != nil {
			return Block{}, &ParseError{Token: s.next(), Err: ErrNumberFormat}
		}
		lineNumber = n
		s.advance()
	}

	var chunks []Chunk
	for s.left() > 0 {
		ch, err := parseChunk(&s)
		if err != nil {
			return Block{}, err
		}
		chunks = append(chunks, ch)
	}

	if hasN {
		return NewNumberedBlock(lineNumber, deleted, chunks), nil
	}
	return NewBlock(deleted, chunks), nil
}

// trimComment strips one leading open and one trailing close delimiter. A
// token cut short by end of line keeps whatever it has.
func trimComment(tok string, open, close byte) string {
	tok = strings.TrimPrefix(tok, string(open))
	return strings.TrimSuffix(tok, string(close))
}

// parseChunk reduces one or more tokens to a single chunk. Dispatch is on
// the current token; the default branch needs one token of lookahead to
// split isolated words from word addresses.
func parseChunk(s *tokenScanner) (Chunk, error) {
	tok := s.next()
	switch {
	case tok[0] == '[':
		s.advance()
		return Comment{Left: '[', Right: ']', Text: trimComment(tok, '[', ']')}, nil
	case tok[0] == '(':
		s.advance()
		return Comment{Left: '(', Right: ')', Text: trimComment(tok, '(', ')')}, nil
	case tok == "%":
		s.advance()
		return Percent{}, nil
	case tok == ";":
		// Everything to end of line is comment text, concatenated with no
		// separator: the lexer already dropped the whitespace.
		s.advance()
		var sb strings.Builder
		for s.left() > 0 {
			sb.WriteString(s.next())
			s.advance()
		}
		return Comment{Left: ';', Right: ';', Text: sb.String()}, nil
	}

	if len(tok) != 1 || s.left() < 2 {
		return nil, &ParseError{Token: tok, Err: ErrUnexpectedToken}
	}
	if !isNumChar(s.at(1)[0]) {
		s.advance()
		return Word{Char: tok[0]}, nil
	}
	return parseWordAddress(s)
}

// parseWordAddress consumes a letter token and its value token. The letter
// decides integer vs float conversion.
func parseWordAddress(s *tokenScanner) (Chunk, error) {
	letter := s.next()[0]
	kind, err := addressKind(letter)
	if err != nil {
		return nil, err
	}
	s.advance()
	val := s.next()
	s.advance()

	if kind == AddressInt {
		v, convErr := strconv.Atoi(val)
		if convErr != nil {
			return nil, &ParseError{Token: val, Err: ErrNumberFormat}
		}
		return IntWord(letter, v), nil
	}
	f, convErr := strconv.ParseFloat(val, 64)
	if convErr != nil {
		return nil, &ParseError{Token: val, Err: ErrNumberFormat}
	}
	return FloatWord(letter, f), nil
}
