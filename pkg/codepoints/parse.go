package codepoints

import (
	"strings"

	"github.com/jacoelho/xregexp/errors"
)

// ParsePoints parses a character-range charset string into intervals.
// offset shifts reported error positions, for callers that hand over a
// slice of a larger pattern.
//
// Grammar: plain characters, ranges "a-b", and single-character escapes.
// A hyphen is literal when it is first, last, doubled, or escaped. Stray
// unmatched brackets are rejected. A trailing lone backslash is literal.
func ParsePoints(charset string, offset int) ([]CodePoint, error) {
	runes := []rune(charset)
	n := len(runes)

	var out []CodePoint
	lastChar := rune(-1) // last emitted single character, -1 if none usable as a range start
	pendingDash := false

	emitChar := func(c rune, pos int) error {
		if pendingDash {
			if lastChar > c {
				return errors.NewSyntaxf(errors.ErrBadRange, charset, offset+pos,
					"invalid range %q-%q (start above end)", lastChar, c)
			}
			out[len(out)-1] = CodePoint{Lo: lastChar, Hi: c + 1}
			pendingDash = false
			lastChar = -1
			return nil
		}
		out = append(out, Point(c))
		lastChar = c
		return nil
	}

	i := 0
	for i < n {
		switch r := runes[i]; r {
		case '\\':
			if i+1 >= n {
				// trailing lone backslash is taken literally
				if err := emitChar('\\', i); err != nil {
					return nil, err
				}
				i++
				continue
			}
			lit, ok := unescapeClassRune(runes[i+1])
			if !ok {
				return nil, errors.NewSyntaxf(errors.ErrBadEscape, charset, offset+i,
					"unknown escape \\%c in character range", runes[i+1])
			}
			if err := emitChar(lit, i); err != nil {
				return nil, err
			}
			i += 2
		case '[', ']':
			return nil, errors.NewSyntaxf(errors.ErrStrayBracket, charset, offset+i,
				"unmatched %q in character range", string(r))
		case '-':
			if i == 0 || i == n-1 || lastChar < 0 || runes[i+1] == '-' {
				// first, last, doubled, or no range start available: literal
				if err := emitChar('-', i); err != nil {
					return nil, err
				}
				// a literal hyphen never starts a range
				lastChar = -1
			} else {
				pendingDash = true
			}
			i++
		default:
			if err := emitChar(r, i); err != nil {
				return nil, err
			}
			i++
		}
	}
	return out, nil
}

func parseCharset(charset string, offset int) ([]CodePoint, error) {
	return ParsePoints(charset, offset)
}

func unescapeClassRune(e rune) (rune, bool) {
	switch e {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	if strings.ContainsRune(classSpecials, e) {
		return e, true
	}
	return 0, false
}
