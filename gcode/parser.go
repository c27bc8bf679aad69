package gcode

import (
	"bufio"
	"io"
	"strings"
)

// Parser reads a program one block per non-empty line. Read returns io.EOF
// once the source is exhausted.
type Parser struct {
	// KeepText stores each block's canonical rendering on the block, for
	// debugging. Set it before the first Read.
	KeepText bool

	br   *bufio.Reader
	line int
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

func (p *Parser) Read() (Block, error) {
	for {
		s, err := p.br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			return Block{}, err
		}
		p.line++

		// Lines are split on \n only; \r is plain whitespace to the lexer.
		s = strings.TrimSuffix(s, "\n")
		if s == "" {
			continue
		}

		tokens, err := lexLine(s)
		if err != nil {
			return Block{}, onLine(err, p.line)
		}
		b, err := parseBlock(tokens)
		if err != nil {
			return Block{}, onLine(err, p.line)
		}
		if p.KeepText {
			b = b.WithText(b.String())
		}
		return b, nil
	}
}

// Parse parses a whole program. The first malformed line aborts the parse;
// there is no partial result.
func Parse(text string) (Program, error) {
	return parse(text, false)
}

// ParseWithBlockText is Parse with each block retaining its canonical
// rendered text.
func ParseWithBlockText(text string) (Program, error) {
	return parse(text, true)
}

func parse(text string, keepText bool) (Program, error) {
	p := NewParser(strings.NewReader(text))
	p.KeepText = keepText
	var prog Program
	for {
		b, err := p.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		prog = append(prog, b)
	}
	return prog, nil
}

func MustParse(text string) Program {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}
