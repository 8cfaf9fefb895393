package slc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		Name     string
		Source   string
		Expected []Kind
	}{
		{
			Name:     "keywords and identifier",
			Source:   "func main",
			Expected: []Kind{KwFunc, Identifier, EndOfFile},
		},
		{
			Name:     "two-char operators take priority over one-char prefixes",
			Source:   "a == b != c <= d >= e",
			Expected: []Kind{Identifier, EqualEqual, Identifier, BangEqual, Identifier, LessEqual, Identifier, GreaterEqual, Identifier, EndOfFile},
		},
		{
			Name:     "range operator",
			Source:   "0..10",
			Expected: []Kind{NumberLit, RangeOp, NumberLit, EndOfFile},
		},
		{
			Name:     "fat arrow",
			Source:   "func f() => 1",
			Expected: []Kind{KwFunc, Identifier, OpenParen, CloseParen, FatArrow, NumberLit, EndOfFile},
		},
		{
			Name:     "line comment is skipped entirely",
			Source:   "var x // trailing comment\nvar y",
			Expected: []Kind{KwVar, Identifier, Newline, KwVar, Identifier, EndOfFile},
		},
		{
			Name:     "reserved-but-unimplemented keywords still lex as keywords",
			Source:   "for in switch case break continue default",
			Expected: []Kind{KwFor, KwIn, KwSwitch, KwCase, KwBreak, KwContinue, KwDefault, EndOfFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.Source))
			tokens := lexer.Lex()
			require.Empty(t, lexer.Errors())

			var kinds []Kind
			for _, tok := range tokens {
				kinds = append(kinds, tok.Kind)
			}
			assert.Equal(t, tt.Expected, kinds)
		})
	}
}

func TestLexerStringEscapes(t *testing.T) {
	lexer := NewLexer([]byte(`"a\nb\tc\\d\"e"`))
	tokens := lexer.Lex()
	require.Empty(t, lexer.Errors())
	require.Len(t, tokens, 2) // StringLit, EOF
	assert.Equal(t, StringLit, tokens[0].Kind)
	assert.Equal(t, "a\\nb\\tc\\\\d\\\"e", tokens[0].Value)
}

func TestLexerInvalidEscapeAccumulatesErrorAndContinues(t *testing.T) {
	lexer := NewLexer([]byte(`"a\qb"`))
	tokens := lexer.Lex()
	require.Len(t, lexer.Errors(), 1)
	var syn SyntaxError
	require.ErrorAs(t, lexer.Errors()[0], &syn)
	assert.Equal(t, StringLit, tokens[0].Kind)
}

func TestLexerUnterminatedStringIsSyntaxError(t *testing.T) {
	lexer := NewLexer([]byte(`"unterminated`))
	lexer.Lex()
	require.Len(t, lexer.Errors(), 1)
	var syn SyntaxError
	require.ErrorAs(t, lexer.Errors()[0], &syn)
	assert.Equal(t, "Unterminated literal", syn.Message)
}

func TestLexerUnknownCharacterIsSyntaxError(t *testing.T) {
	lexer := NewLexer([]byte("var x = `"))
	lexer.Lex()
	require.Len(t, lexer.Errors(), 1)
	assert.Contains(t, lexer.Errors()[0].Error(), "Unexpected character")
}

func TestLexerSpanCoversSourceInOrder(t *testing.T) {
	source := "var count = 10"
	lexer := NewLexer([]byte(source))
	tokens := lexer.Lex()
	require.Empty(t, lexer.Errors())

	for i, tok := range tokens {
		if tok.Kind == Newline || tok.Kind == EndOfFile {
			continue
		}
		assert.Less(t, tok.Span.Start, tok.Span.End, "token %d span should be non-empty", i)
	}
}
