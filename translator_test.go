package xregexp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/xregexp/errors"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "literal", pattern: "abc", want: "abc"},
		{name: "dot excludes both separators", pattern: ".", want: `[^\r\n]`},
		{name: "alternation", pattern: "a|b", want: "a|b"},
		{name: "group", pattern: "(ab)+", want: "(ab)+"},
		{name: "anchors pass through", pattern: "^a$", want: "^a$"},
		{name: "escape passthrough", pattern: `\d+\s*`, want: `\d+\s*`},
		{name: "braced quantifier", pattern: "a{2,4}", want: "a{2,4}"},
		{name: "open quantifier", pattern: "a{2,}", want: "a{2,}"},
		{name: "exact quantifier", pattern: "a{3}", want: "a{3}"},
		{name: "largest allowed count", pattern: "a{1000000}", want: "a{1000000}"},
		{name: "literal closing brace", pattern: "a}", want: "a}"},
		{name: "simple class", pattern: "[abc]", want: "[a-c]"},
		{name: "sparse class", pattern: "[ac]", want: "[ac]"},
		{name: "negated class", pattern: "[^a-z]", want: "[^a-z]"},
		{name: "class subtraction", pattern: "[a-z-[aeiou]]", want: "[b-df-hj-np-tv-z]"},
		{name: "empty after subtraction", pattern: "[a-[a]]", want: `[^\w\W]`},
		{name: "negated class subtraction", pattern: "[^a-z-[a-z]]", want: "[^a-z]"},
		{name: "class covering everything", pattern: `[\w\W]`, want: `[\w\W]`},
		{name: "back reference", pattern: `(a)\1`, want: `(a)\1`},
		{name: "lazy quantifier", pattern: "a*?b", want: "a*?b"},
		{name: "empty pattern", pattern: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.pattern)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateAnchorsDisabled(t *testing.T) {
	opts := NewOptions().WithAnchors(false)

	got, err := TranslateWith(".+", opts)
	require.NoError(t, err)
	require.Equal(t, `^([^\r\n]+)$(?!\n\Z)`, got)

	got, err = TranslateWith("", opts)
	require.NoError(t, err)
	require.Equal(t, `^()$(?!\n\Z)`, got)

	_, err = TranslateWith("^a", opts)
	require.Error(t, err)
	syntaxErr, ok := errors.AsSyntax(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrAnchor, syntaxErr.Code)
}

func TestTranslateBackReferencesDisabled(t *testing.T) {
	opts := NewOptions().WithBackReferences(false)

	got, err := TranslateWith("(a)(b)", opts)
	require.NoError(t, err)
	require.Equal(t, "(?:a)(?:b)", got)

	_, err = TranslateWith(`(a)\1`, opts)
	require.Error(t, err)
	syntaxErr, ok := errors.AsSyntax(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrForbiddenEscape, syntaxErr.Code)
	require.Equal(t, 3, syntaxErr.Position)
}

func TestTranslateLazyQuantifiersDisabled(t *testing.T) {
	opts := NewOptions().WithLazyQuantifiers(false)

	_, err := TranslateWith("a*?", opts)
	require.Error(t, err)
	syntaxErr, ok := errors.AsSyntax(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrStackedQuantifier, syntaxErr.Code)

	// greedy quantifiers stay available
	got, err := TranslateWith("a*b+", opts)
	require.NoError(t, err)
	require.Equal(t, "a*b+", got)
}

func TestTranslateUnknownIsBlock(t *testing.T) {
	got, err := Translate(`\p{IsUnknownBlockName}`)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	_, err = TranslateWith(`\p{IsUnknownBlockName}`, NewOptions().WithIsSyntax(false))
	require.Error(t, err)
	lookupErr, ok := errors.AsLookup(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrUnknownBlock, lookupErr.Code)
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		code    errors.ErrorCode
	}{
		{name: "unbalanced close", pattern: "(.*))", code: errors.ErrUnbalancedParen},
		{name: "unclosed group", pattern: "(a", code: errors.ErrUnclosedGroup},
		{name: "extension group", pattern: "(?:a)", code: errors.ErrGroupPrefix},
		{name: "lookahead group", pattern: "(?=a)", code: errors.ErrGroupPrefix},
		{name: "leading star", pattern: "*a", code: errors.ErrBadQuantifier},
		{name: "quantifier after open", pattern: "(+a)", code: errors.ErrBadQuantifier},
		{name: "quantifier after pipe", pattern: "a|*b", code: errors.ErrBadQuantifier},
		{name: "stacked star", pattern: "a**", code: errors.ErrStackedQuantifier},
		{name: "stacked after lazy", pattern: "a*?+", code: errors.ErrStackedQuantifier},
		{name: "stacked brace", pattern: "a+{2}", code: errors.ErrStackedQuantifier},
		{name: "leading brace", pattern: "{2}", code: errors.ErrBadQuantifier},
		{name: "inverted brace range", pattern: "a{4,2}", code: errors.ErrBadQuantifier},
		{name: "unterminated brace", pattern: "a{2", code: errors.ErrBadQuantifier},
		{name: "huge exact count", pattern: "a{99999999999999999999}", code: errors.ErrBadQuantifier},
		{name: "huge upper bound", pattern: "a{1,99999999999999999999}", code: errors.ErrBadQuantifier},
		{name: "empty brace", pattern: "a{}", code: errors.ErrBadQuantifier},
		{name: "empty class", pattern: "[]", code: errors.ErrEmptyClass},
		{name: "unclosed class", pattern: "[a-z", code: errors.ErrUnclosedClass},
		{name: "stray close bracket", pattern: "a]", code: errors.ErrStrayBracket},
		{name: "inverted class range", pattern: "[z-a]", code: errors.ErrBadRange},
		{name: "word boundary escape", pattern: `a\b`, code: errors.ErrForbiddenEscape},
		{name: "string start escape", pattern: `\Aa`, code: errors.ErrForbiddenEscape},
		{name: "hex escape", pattern: `\x41`, code: errors.ErrForbiddenEscape},
		{name: "long hex escape", pattern: "\\u0041", code: errors.ErrForbiddenEscape},
		{name: "octal escape", pattern: `\o{101}`, code: errors.ErrForbiddenEscape},
		{name: "forbidden escape inside class", pattern: `[\Z]`, code: errors.ErrForbiddenEscape},
		{name: "trailing backslash", pattern: `a\`, code: errors.ErrBadEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Translate(tt.pattern)
			require.Error(t, err)
			syntaxErr, ok := errors.AsSyntax(err)
			require.True(t, ok)
			require.Equal(t, tt.code, syntaxErr.Code)
		})
	}
}

func TestTranslateEscapedBackslashNotForbidden(t *testing.T) {
	// \\b is an escaped backslash followed by a literal b, not \b
	got, err := Translate(`\\b`)
	require.NoError(t, err)
	require.Equal(t, `\\b`, got)

	// \x without two hex digits is an ordinary passthrough escape
	got, err = Translate(`\xg`)
	require.NoError(t, err)
	require.Equal(t, `\xg`, got)
}

func TestTranslateErrorPositions(t *testing.T) {
	_, err := Translate("ab))")
	syntaxErr, ok := errors.AsSyntax(err)
	require.True(t, ok)
	require.Equal(t, 2, syntaxErr.Position)
	require.Equal(t, "ab))", syntaxErr.Pattern)

	// class errors report the position of the rune that completed the
	// bad range, relative to the enclosing pattern
	_, err = Translate("abc[z-a]")
	syntaxErr, ok = errors.AsSyntax(err)
	require.True(t, ok)
	require.Equal(t, 6, syntaxErr.Position)
}

func TestCompileAndMatch(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		opts     Options
		match    []string
		nonMatch []string
	}{
		{
			name:     "whole string dot plus",
			pattern:  ".+",
			opts:     NewOptions().WithAnchors(false),
			match:    []string{"abc", "a"},
			nonMatch: []string{"", "abc\n", "a\nb"},
		},
		{
			name:     "consonants only",
			pattern:  "[a-z-[aeiou]]+",
			opts:     NewOptions().WithAnchors(false),
			match:    []string{"bcd", "xyz"},
			nonMatch: []string{"bad", "AEI", ""},
		},
		{
			name:     "exact digits",
			pattern:  `\d{3}`,
			opts:     NewOptions().WithAnchors(false),
			match:    []string{"123", "000"},
			nonMatch: []string{"12", "1234", "12a"},
		},
		{
			name:     "xml name",
			pattern:  `\i\c*`,
			opts:     NewOptions().WithAnchors(false).WithBackReferences(false),
			match:    []string{"a", "a:b", "_x-1", "A1.2"},
			nonMatch: []string{"1a", "-a", ""},
		},
		{
			name:     "upper case run",
			pattern:  `\p{Lu}+`,
			opts:     NewOptions().WithAnchors(false),
			match:    []string{"ABC", "Z"},
			nonMatch: []string{"AbC", "abc"},
		},
		{
			name:     "not basic latin",
			pattern:  `\P{IsBasicLatin}+`,
			opts:     NewOptions().WithAnchors(false),
			match:    []string{"éö", "日本語"},
			nonMatch: []string{"abc"},
		},
		{
			// anchors stay on: the whole-string wrapper adds its own
			// capturing group, which would renumber \1
			name:     "back reference repeat",
			pattern:  `^(ab)\1$`,
			opts:     NewOptions(),
			match:    []string{"abab"},
			nonMatch: []string{"ab", "abba"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := CompileWith(tt.pattern, tt.opts)
			require.NoError(t, err)
			for _, s := range tt.match {
				ok, err := re.MatchString(s)
				require.NoError(t, err)
				require.True(t, ok, "expected %q to match", s)
			}
			for _, s := range tt.nonMatch {
				ok, err := re.MatchString(s)
				require.NoError(t, err)
				require.False(t, ok, "expected %q not to match", s)
			}
		})
	}
}

func TestCompileHostRejection(t *testing.T) {
	// a bare back reference survives translation but has no group to
	// refer to, so the host engine rejects it
	_, err := Compile(`\1`)
	require.Error(t, err)
	syntaxErr, ok := errors.AsSyntax(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrHostCompile, syntaxErr.Code)
}
