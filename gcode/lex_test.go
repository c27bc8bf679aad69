package gcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexLine(t *testing.T) {
	toks, err := lexLine("G0 X0.0 Y0.0 Z0.0")
	assert.NoError(t, err)
	assert.Equal(t, []string{"G", "0", "X", "0.0", "Y", "0.0", "Z", "0.0"}, toks)
}

func TestLexLine_Whitespace(t *testing.T) {
	toks, err := lexLine(" \tG1\tX-2.5 \r")
	assert.NoError(t, err)
	assert.Equal(t, []string{"G", "1", "X", "-2.5"}, toks)

	toks, err = lexLine("   \r\t")
	assert.NoError(t, err)
	assert.Len(t, toks, 0)
}

func TestLexLine_NumericRun(t *testing.T) {
	// Greedy and unvalidated; malformed runs fail later at conversion.
	toks, err := lexLine("X1.2.-3")
	assert.NoError(t, err)
	assert.Equal(t, []string{"X", "1.2.-3"}, toks)
}

func TestLexLine_NestedComment(t *testing.T) {
	toks, err := lexLine("(outer (inner) end)")
	assert.NoError(t, err)
	assert.Equal(t, []string{"(outer (inner) end)"}, toks)

	toks, err = lexLine("G1 [fixture [left]] X1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"G", "1", "[fixture [left]]", "X", "1"}, toks)
}

func TestLexLine_UnbalancedComment(t *testing.T) {
	// An unclosed comment runs to the end of the line.
	toks, err := lexLine("G1 (no close")
	assert.NoError(t, err)
	assert.Equal(t, []string{"G", "1", "(no close"}, toks)
}

func TestLexLine_UnmatchedCloser(t *testing.T) {
	_, err := lexLine("G1 ) X1")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnmatchedDelimiter))

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, 4, pe.Column)

	_, err = lexLine("]")
	assert.True(t, errors.Is(err, ErrUnmatchedDelimiter))
}

func TestLexLine_CasePreserved(t *testing.T) {
	toks, err := lexLine("g1 x2.5")
	assert.NoError(t, err)
	assert.Equal(t, []string{"g", "1", "x", "2.5"}, toks)
}

func TestLexLine_SingleChars(t *testing.T) {
	toks, err := lexLine("/ N 5 %")
	assert.NoError(t, err)
	assert.Equal(t, []string{"/", "N", "5", "%"}, toks)
}
