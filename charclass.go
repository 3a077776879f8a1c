package xregexp

import (
	"strings"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/codepoints"
	"github.com/jacoelho/xregexp/pkg/unicodedata"
)

// CharacterClass is the set denoted by the body of an XSD [...] class. It
// keeps a positive and a negative subset instead of resolving negated
// shortcuts eagerly, which keeps class subtraction cheap.
type CharacterClass struct {
	positive *codepoints.Subset
	negative *codepoints.Subset
}

// NewCharacterClass parses the body of an already unwrapped [...] class,
// including a leading ^ and a trailing -[...] subtraction, with default
// options.
func NewCharacterClass(charset string) (*CharacterClass, error) {
	return NewCharacterClassWith(charset, NewOptions())
}

// NewCharacterClassWith parses a class body with explicit options.
func NewCharacterClassWith(charset string, opts Options) (*CharacterClass, error) {
	return parseClass(charset, charset, 0, opts.withDefaults())
}

func emptyClass() *CharacterClass {
	return &CharacterClass{positive: emptySubset(), negative: emptySubset()}
}

func emptySubset() *codepoints.Subset {
	s, _ := codepoints.New()
	return s
}

func fullSubset() *codepoints.Subset {
	s, _ := codepoints.New(codepoints.Full())
	return s
}

// parseClass parses body, a slice of src starting at rune offset. Reported
// error positions are relative to src.
func parseClass(src, body string, offset int, o resolvedOptions) (*CharacterClass, error) {
	negated := strings.HasPrefix(body, "^")
	if negated {
		body = body[1:]
		offset++
	}
	if body == "" {
		return nil, errors.NewSyntaxf(errors.ErrEmptyClass, src, offset,
			"empty character class")
	}

	runes := []rune(body)
	head := runes
	var subtrahend *CharacterClass
	if split, ok := findSubtraction(runes); ok {
		inner, end, err := unwrapSubtrahend(src, runes, split+1, offset)
		if err != nil {
			return nil, err
		}
		if end != len(runes) {
			return nil, errors.NewSyntaxf(errors.ErrStrayBracket, src, offset+end,
				"unexpected text after class subtraction")
		}
		sub, err := parseClass(src, string(inner), offset+split+2, o)
		if err != nil {
			return nil, err
		}
		subtrahend = sub
		head = runes[:split]
	}

	c := emptyClass()
	if err := c.parseTokens(src, head, offset, o); err != nil {
		return nil, err
	}
	if negated {
		c.Complement()
	}
	if subtrahend != nil {
		c.Subtract(subtrahend)
	}
	return c, nil
}

// findSubtraction locates an unescaped "-[" at the top nesting level.
func findSubtraction(runes []rune) (int, bool) {
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '-':
			if i+1 < len(runes) && runes[i+1] == '[' {
				return i, true
			}
		}
	}
	return 0, false
}

// unwrapSubtrahend extracts the bracketed body starting at the '[' at open,
// returning the inner runes and the index just past the closing ']'.
func unwrapSubtrahend(src string, runes []rune, open, offset int) ([]rune, int, error) {
	depth := 1
	for i := open + 1; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return runes[open+1 : i], i + 1, nil
			}
		}
	}
	return nil, 0, errors.NewSyntaxf(errors.ErrUnclosedClass, src, offset+open,
		"character class subtraction is never closed")
}

// parseTokens splits the class body on shortcut and property escapes,
// feeding the literal runs between them through the range grammar.
func (c *CharacterClass) parseTokens(src string, runes []rune, offset int, o resolvedOptions) error {
	segStart := 0
	flush := func(end int) error {
		if end == segStart {
			return nil
		}
		points, err := codepoints.ParsePoints(string(runes[segStart:end]), offset+segStart)
		if err != nil {
			return err
		}
		return c.positive.Update(points...)
	}

	i := 0
	for i < len(runes) {
		if runes[i] != '\\' || i+1 >= len(runes) {
			i++
			continue
		}
		switch e := runes[i+1]; e {
		case 's', 'd', 'w', 'i', 'c', 'S', 'D', 'W', 'I', 'C':
			if err := flush(i); err != nil {
				return err
			}
			subset := o.registry.Shortcut(shortcutKey(e))
			if e >= 'a' {
				c.positive.UpdateSubset(subset)
			} else {
				c.negative.UpdateSubset(subset)
			}
			i += 2
			segStart = i
		case 'p', 'P':
			if err := flush(i); err != nil {
				return err
			}
			name, next, err := parsePropertyName(src, runes, i, offset)
			if err != nil {
				return err
			}
			subset, err := resolveProperty(o, name)
			if err != nil {
				return err
			}
			if e == 'p' {
				c.positive.UpdateSubset(subset)
			} else {
				c.negative.UpdateSubset(subset)
			}
			i = next
			segStart = i
		default:
			// stays in the literal run; the range grammar validates it
			i += 2
		}
	}
	return flush(len(runes))
}

func shortcutKey(e rune) unicodedata.Shortcut {
	switch e {
	case 's', 'S':
		return unicodedata.ShortcutWhitespace
	case 'd', 'D':
		return unicodedata.ShortcutDigit
	case 'w', 'W':
		return unicodedata.ShortcutWord
	case 'i', 'I':
		return unicodedata.ShortcutNameStart
	default:
		return unicodedata.ShortcutNameChar
	}
}

// parsePropertyName reads the {Name} part of a \p or \P escape starting at
// the backslash at index i.
func parsePropertyName(src string, runes []rune, i, offset int) (string, int, error) {
	if i+2 >= len(runes) || runes[i+2] != '{' {
		return "", 0, errors.NewSyntaxf(errors.ErrBadEscape, src, offset+i,
			"\\%c must be followed by a {Name} block", runes[i+1])
	}
	for j := i + 3; j < len(runes); j++ {
		if runes[j] == '}' {
			if j == i+3 {
				return "", 0, errors.NewSyntaxf(errors.ErrBadEscape, src, offset+i,
					"empty name in \\%c{}", runes[i+1])
			}
			return string(runes[i+3 : j]), j + 1, nil
		}
	}
	return "", 0, errors.NewSyntaxf(errors.ErrBadEscape, src, offset+i,
		"unterminated \\%c{ escape", runes[i+1])
}

// resolveProperty resolves a category or Is-block name. Under the XSD 1.1
// compatibility rule an unknown Is-block matches the full code space.
func resolveProperty(o resolvedOptions, name string) (*codepoints.Subset, error) {
	subset, err := o.registry.SubsetFor(name)
	if err != nil {
		if le, ok := errors.AsLookup(err); ok &&
			le.Code == errors.ErrUnknownBlock && o.isSyntax {
			return fullSubset(), nil
		}
		return nil, err
	}
	return subset, nil
}

// Contains reports whether the class matches r: a member of the positive
// subset, or outside the negative one when a negative part exists.
func (c *CharacterClass) Contains(r rune) bool {
	if c.negative.IsEmpty() {
		return c.positive.Contains(r)
	}
	return c.positive.Contains(r) || !c.negative.Contains(r)
}

// Subtract removes other's coverage from the class in place.
func (c *CharacterClass) Subtract(other *CharacterClass) {
	switch {
	case !other.negative.IsEmpty() && !c.negative.IsEmpty():
		c.positive.UpdateSubset(other.negative.Difference(c.negative))
		c.negative = emptySubset()
		c.negative.UpdateSubset(other.positive)
	case !other.negative.IsEmpty():
		c.positive = c.positive.Intersection(other.negative)
	case !c.negative.IsEmpty():
		c.negative.UpdateSubset(other.positive)
	}
	c.positive.DifferenceUpdateSubset(other.positive)
}

// Complement inverts the class in place by swapping its parts. An empty
// class complements to the full code space.
func (c *CharacterClass) Complement() {
	if c.positive.IsEmpty() && c.negative.IsEmpty() {
		c.positive = fullSubset()
		return
	}
	c.positive, c.negative = c.negative, c.positive
}

// IsEmpty reports whether the class matches no code point at all.
func (c *CharacterClass) IsEmpty() bool {
	if !c.positive.IsEmpty() {
		return false
	}
	return c.negative.IsEmpty() || c.negative.Len() == int(codepoints.MaxCodePoint)+1
}

// IsFull reports whether the class matches every code point.
func (c *CharacterClass) IsFull() bool {
	if c.negative.IsEmpty() {
		return c.positive.Len() == int(codepoints.MaxCodePoint)+1
	}
	return c.negative.Difference(c.positive).IsEmpty()
}

// String renders the class back into host [...] syntax. A class matching
// nothing renders as [^\w\W] and one matching everything as [\w\W], both
// line-separator safe in any host dialect.
func (c *CharacterClass) String() string {
	switch {
	case c.IsEmpty():
		return `[^\w\W]`
	case c.IsFull():
		return `[\w\W]`
	case c.negative.IsEmpty():
		return "[" + c.positive.String() + "]"
	case c.positive.IsEmpty():
		return "[^" + c.negative.String() + "]"
	default:
		comp, err := c.negative.Complement()
		if err != nil {
			comp = emptySubset()
		}
		return "[" + comp.String() + c.positive.String() + "]"
	}
}
