/*
File   : ash/token/token_test.go
Package: token
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_NoLiteral(t *testing.T) {
	tok := New(PLUS, "+", 3)
	assert.Equal(t, PLUS, tok.Kind)
	assert.Equal(t, "+", tok.Lexeme)
	assert.Nil(t, tok.Literal)
	assert.Equal(t, 3, tok.Line)
}

func TestNewLiteral_Number(t *testing.T) {
	tok := NewLiteral(NUMBER, "42", 42.0, 1)
	assert.Equal(t, 42.0, tok.Literal)
}

func TestKeywords_CoversExactSet(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "true", "var", "while",
	}
	assert.Len(t, Keywords, len(want))
	for _, kw := range want {
		_, ok := Keywords[kw]
		assert.Truef(t, ok, "missing keyword %q", kw)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "IDENTIFIER", IDENTIFIER.String())
}
