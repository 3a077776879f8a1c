package xregexp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/xregexp/errors"
)

func TestCharacterClassLiteralsAndRanges(t *testing.T) {
	c, err := NewCharacterClass("a-z0-9")
	require.NoError(t, err)
	require.True(t, c.Contains('a'))
	require.True(t, c.Contains('5'))
	require.False(t, c.Contains('A'))
	require.Equal(t, "[0-9a-z]", c.String())
}

func TestCharacterClassShortcuts(t *testing.T) {
	c, err := NewCharacterClass(`\d`)
	require.NoError(t, err)
	require.True(t, c.Contains('5'))
	require.False(t, c.Contains('x'))

	negated, err := NewCharacterClass(`\D`)
	require.NoError(t, err)
	require.True(t, negated.Contains('x'))
	require.False(t, negated.Contains('5'))

	mixed, err := NewCharacterClass(`a-f\d`)
	require.NoError(t, err)
	require.True(t, mixed.Contains('b'))
	require.True(t, mixed.Contains('7'))
	require.False(t, mixed.Contains('z'))
}

func TestCharacterClassProperties(t *testing.T) {
	upper, err := NewCharacterClass(`\p{Lu}`)
	require.NoError(t, err)
	require.True(t, upper.Contains('A'))
	require.False(t, upper.Contains('a'))

	notUpper, err := NewCharacterClass(`\P{Lu}`)
	require.NoError(t, err)
	require.True(t, notUpper.Contains('a'))
	require.False(t, notUpper.Contains('A'))

	block, err := NewCharacterClass(`\p{IsBasicLatin}`)
	require.NoError(t, err)
	require.True(t, block.Contains('A'))
	require.False(t, block.Contains(0x100))
}

func TestCharacterClassUnknownIsBlock(t *testing.T) {
	// the XSD 1.1 compatibility rule lets an unknown Is-block match the
	// whole code space
	c, err := NewCharacterClass(`\p{IsUnknownBlockName}`)
	require.NoError(t, err)
	require.True(t, c.Contains('A'))
	require.True(t, c.Contains(0x10FFFF))

	_, err = NewCharacterClassWith(`\p{IsUnknownBlockName}`, NewOptions().WithIsSyntax(false))
	require.Error(t, err)
	lookupErr, ok := errors.AsLookup(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrUnknownBlock, lookupErr.Code)

	// unknown categories fail regardless of the compatibility rule
	_, err = NewCharacterClass(`\p{Zz}`)
	require.Error(t, err)
}

func TestCharacterClassSubtraction(t *testing.T) {
	a, err := NewCharacterClass("a-z")
	require.NoError(t, err)
	b, err := NewCharacterClass("m-p")
	require.NoError(t, err)

	a.Subtract(b)
	require.Equal(t, "[a-lq-z]", a.String())
	require.True(t, a.Contains('l'))
	require.False(t, a.Contains('n'))
}

func TestCharacterClassSubtractionBothNegative(t *testing.T) {
	// non-digits minus non-whitespace leaves exactly the whitespace chars
	a, err := NewCharacterClass(`\D`)
	require.NoError(t, err)
	b, err := NewCharacterClass(`\S`)
	require.NoError(t, err)

	a.Subtract(b)
	require.True(t, a.Contains(' '))
	require.True(t, a.Contains('\t'))
	require.False(t, a.Contains('x'))
	require.False(t, a.Contains('5'))
}

func TestCharacterClassSubtractionMixed(t *testing.T) {
	// positive minus a negated class intersects with the negated subset
	a, err := NewCharacterClass("a-z")
	require.NoError(t, err)
	b, err := NewCharacterClass(`\S`)
	require.NoError(t, err)

	a.Subtract(b)
	require.True(t, a.IsEmpty())

	// negated minus positive grows the negative part
	c, err := NewCharacterClass(`\D`)
	require.NoError(t, err)
	d, err := NewCharacterClass("a-f")
	require.NoError(t, err)

	c.Subtract(d)
	require.False(t, c.Contains('b'))
	require.False(t, c.Contains('5'))
	require.True(t, c.Contains('z'))
}

func TestCharacterClassInlineSubtraction(t *testing.T) {
	c, err := NewCharacterClass("a-z-[aeiou]")
	require.NoError(t, err)
	require.Equal(t, "[b-df-hj-np-tv-z]", c.String())

	nested, err := NewCharacterClass("a-z-[m-p-[n]]")
	require.NoError(t, err)
	require.True(t, nested.Contains('n'))
	require.False(t, nested.Contains('m'))
	require.True(t, nested.Contains('a'))
}

func TestCharacterClassNegated(t *testing.T) {
	c, err := NewCharacterClass("^a-z")
	require.NoError(t, err)
	require.True(t, c.Contains('A'))
	require.False(t, c.Contains('b'))
	require.Equal(t, "[^a-z]", c.String())
}

func TestCharacterClassComplement(t *testing.T) {
	c, err := NewCharacterClass("a")
	require.NoError(t, err)
	c.Complement()
	require.False(t, c.Contains('a'))
	require.True(t, c.Contains('b'))
	require.Equal(t, "[^a]", c.String())

	empty := emptyClass()
	require.True(t, empty.IsEmpty())
	empty.Complement()
	require.True(t, empty.IsFull())
	require.Equal(t, `[\w\W]`, empty.String())
}

func TestCharacterClassEmptyAfterSubtraction(t *testing.T) {
	c, err := NewCharacterClass("a-[a]")
	require.NoError(t, err)
	require.True(t, c.IsEmpty())
	require.Equal(t, `[^\w\W]`, c.String())
}

func TestCharacterClassErrors(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		code    errors.ErrorCode
	}{
		{name: "empty", charset: "", code: errors.ErrEmptyClass},
		{name: "only negation", charset: "^", code: errors.ErrEmptyClass},
		{name: "inverted range", charset: "z-a", code: errors.ErrBadRange},
		{name: "stray bracket", charset: "a]", code: errors.ErrStrayBracket},
		{name: "unclosed subtraction", charset: "a-[b", code: errors.ErrUnclosedClass},
		{name: "text after subtraction", charset: "a-[b]c", code: errors.ErrStrayBracket},
		{name: "unknown escape", charset: `\q`, code: errors.ErrBadEscape},
		{name: "property without braces", charset: `\pLu`, code: errors.ErrBadEscape},
		{name: "unterminated property", charset: `\p{Lu`, code: errors.ErrBadEscape},
		{name: "empty property", charset: `\p{}`, code: errors.ErrBadEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharacterClass(tt.charset)
			require.Error(t, err)
			syntaxErr, ok := errors.AsSyntax(err)
			require.True(t, ok)
			require.Equal(t, tt.code, syntaxErr.Code)
		})
	}
}

func TestCharacterClassLiteralHyphens(t *testing.T) {
	c, err := NewCharacterClass("-a")
	require.NoError(t, err)
	require.True(t, c.Contains('-'))
	require.True(t, c.Contains('a'))

	escaped, err := NewCharacterClass(`a\-z`)
	require.NoError(t, err)
	require.True(t, escaped.Contains('-'))
	require.False(t, escaped.Contains('b'))
}
