package gcode

// charScanner is a cursor over one line of source text. All state is local
// to a single lexLine call.
type charScanner struct {
	s string
	i int
}

func (s *charScanner) left() bool { return s.i < len(s.s) }
func (s *charScanner) peek() byte { return s.s[s.i] }
func (s *charScanner) advance()   { s.i++ }

// col is the 1-based column of the cursor, for diagnostics.
func (s *charScanner) col() int { return s.i + 1 }

func isNumChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}

func isLineSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func (s *charScanner) skipSpace() {
	for s.left() && isLineSpace(s.peek()) {
		s.advance()
	}
}

// digitString consumes a greedy run of numeric characters. Well-formedness
// is not checked here; a malformed run surfaces later as a conversion error.
func (s *charScanner) digitString() string {
	start := s.i
	for s.left() && isNumChar(s.peek()) {
		s.advance()
	}
	return s.s[start:s.i]
}

// commentString consumes a delimiter-inclusive comment token starting at an
// open delimiter, tracking nesting depth. Unbalanced input runs to the end
// of the line.
func (s *charScanner) commentString(open, close byte) string {
	start := s.i
	depth := 0
	for s.left() {
		switch s.peek() {
		case open:
			depth++
		case close:
			depth--
		}
		s.advance()
		if depth == 0 {
			break
		}
	}
	return s.s[start:s.i]
}

// lexLine splits one line of source text into tokens: numeric runs, whole
// comment spans (delimiters included), and single characters. Whitespace is
// never emitted and character case is preserved.
func lexLine(text string) ([]string, error) {
	s := charScanner{s: text}
	var tokens []string

	s.skipSpace()
	for s.left() {
		c := s.peek()
		switch {
		case isNumChar(c):
			tokens = append(tokens, s.digitString())
		case c == '(':
			tokens = append(tokens, s.commentString('(', ')'))
		case c == '[':
			tokens = append(tokens, s.commentString('[', ']'))
		case c == ')' || c == ']':
			return nil, &ParseError{Column: s.col(), Token: string(c), Err: ErrUnmatchedDelimiter}
		default:
			tokens = append(tokens, string(c))
			s.advance()
		}
		s.skipSpace()
	}
	return tokens, nil
}
