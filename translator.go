package xregexp

import (
	"strings"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/unicodedata"
)

const (
	quantNone = iota
	quantGreedy
	quantLazy
)

// Translate converts an XSD/XPath pattern into host dialect text with
// default options.
func Translate(pattern string) (string, error) {
	return TranslateWith(pattern, NewOptions())
}

// TranslateWith converts a pattern with explicit options. On any failure it
// returns an empty string, never a partial translation.
func TranslateWith(pattern string, opts Options) (string, error) {
	o := opts.withDefaults()
	if err := scanForbiddenEscapes(pattern, o.backReferences); err != nil {
		return "", err
	}

	t := &translator{pattern: pattern, runes: []rune(pattern), opts: o}
	if err := t.run(); err != nil {
		return "", err
	}
	body := t.out.String()
	if !o.anchors {
		return `^(` + body + `)$(?!\n\Z)`, nil
	}
	return body, nil
}

// scanForbiddenEscapes rejects escapes the XSD grammar never allows,
// wherever they appear, before the main scan runs. Back reference escapes
// \1..\9 join the list when back references are off.
func scanForbiddenEscapes(pattern string, backReferences bool) error {
	runes := []rune(pattern)
	n := len(runes)
	for i := 0; i < n; i++ {
		if runes[i] != '\\' || i+1 >= n {
			continue
		}
		e := runes[i+1]
		forbidden := false
		switch {
		case e == 'A' || e == 'B' || e == 'Z' || e == 'b' || e == 'z':
			forbidden = true
		case e >= '1' && e <= '9':
			forbidden = !backReferences
		case e == 'x':
			forbidden = allHex(runes, i+2, 2)
		case e == 'u':
			forbidden = allHex(runes, i+2, 4)
		case e == 'U':
			forbidden = allHex(runes, i+2, 8)
		case e == 'o':
			forbidden = hasOctalBraces(runes, i+2)
		}
		if forbidden {
			return errors.NewSyntaxf(errors.ErrForbiddenEscape, pattern, i,
				"escape \\%c is not allowed", e)
		}
		i++ // the escaped character cannot open another escape
	}
	return nil
}

func allHex(runes []rune, start, count int) bool {
	if start+count > len(runes) {
		return false
	}
	for _, r := range runes[start : start+count] {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

func hasOctalBraces(runes []rune, start int) bool {
	if start >= len(runes) || runes[start] != '{' {
		return false
	}
	for j := start + 1; j < len(runes); j++ {
		switch {
		case runes[j] == '}':
			return j > start+1
		case runes[j] < '0' || runes[j] > '7':
			return false
		}
	}
	return false
}

type translator struct {
	pattern string
	runes   []rune
	opts    resolvedOptions

	out        strings.Builder
	groupDepth int
	canQuant   bool
	prevQuant  int
}

func (t *translator) syntaxf(code errors.ErrorCode, pos int, format string, args ...any) error {
	return errors.NewSyntaxf(code, t.pattern, pos, format, args...)
}

func (t *translator) run() error {
	n := len(t.runes)
	for i := 0; i < n; {
		next, err := t.step(i)
		if err != nil {
			return err
		}
		i = next
	}
	if t.groupDepth > 0 {
		return t.syntaxf(errors.ErrUnclosedGroup, n, "%d group(s) left open", t.groupDepth)
	}
	return nil
}

// step translates the token starting at rune index i and returns the index
// of the next one.
func (t *translator) step(i int) (int, error) {
	switch r := t.runes[i]; r {
	case '.':
		// the host dot may leave CR matchable
		t.out.WriteString(`[^\r\n]`)
		t.atom()
		return i + 1, nil

	case '^', '$':
		if !t.opts.anchors {
			return 0, t.syntaxf(errors.ErrAnchor, i, "anchor %q is not allowed here", r)
		}
		t.out.WriteRune(r)
		t.boundary()
		return i + 1, nil

	case '|':
		t.out.WriteRune(r)
		t.boundary()
		return i + 1, nil

	case '(':
		if i+1 < len(t.runes) && t.runes[i+1] == '?' {
			return 0, t.syntaxf(errors.ErrGroupPrefix, i, "(?...) group forms are not allowed")
		}
		if t.opts.backReferences {
			t.out.WriteString("(")
		} else {
			t.out.WriteString("(?:")
		}
		t.groupDepth++
		t.boundary()
		return i + 1, nil

	case ')':
		if t.groupDepth == 0 {
			return 0, t.syntaxf(errors.ErrUnbalancedParen, i, "unbalanced ')'")
		}
		t.groupDepth--
		t.out.WriteRune(r)
		t.atom()
		return i + 1, nil

	case '?', '*', '+':
		return t.quantifier(i, r)

	case '{':
		return t.bracedQuantifier(i)

	case '[':
		return t.class(i)

	case ']':
		return 0, t.syntaxf(errors.ErrStrayBracket, i, "unmatched ']'")

	case '\\':
		return t.escape(i)

	default:
		t.out.WriteRune(r)
		t.atom()
		return i + 1, nil
	}
}

func (t *translator) atom() {
	t.canQuant = true
	t.prevQuant = quantNone
}

func (t *translator) boundary() {
	t.canQuant = false
	t.prevQuant = quantNone
}

func (t *translator) quantifier(i int, r rune) (int, error) {
	switch {
	case t.prevQuant == quantGreedy && r == '?' && t.opts.lazyQuantifiers:
		t.out.WriteRune(r)
		t.prevQuant = quantLazy
		return i + 1, nil
	case t.prevQuant != quantNone:
		return 0, t.syntaxf(errors.ErrStackedQuantifier, i,
			"quantifier %q may not follow another quantifier", r)
	case !t.canQuant:
		return 0, t.syntaxf(errors.ErrBadQuantifier, i, "nothing to repeat with %q", r)
	default:
		t.out.WriteRune(r)
		t.canQuant = false
		t.prevQuant = quantGreedy
		return i + 1, nil
	}
}

// bracedQuantifier parses {n}, {n,}, or {n,m}.
func (t *translator) bracedQuantifier(i int) (int, error) {
	if t.prevQuant != quantNone {
		return 0, t.syntaxf(errors.ErrStackedQuantifier, i,
			"quantifier {...} may not follow another quantifier")
	}
	if !t.canQuant {
		return 0, t.syntaxf(errors.ErrBadQuantifier, i, "nothing to repeat with {...}")
	}

	j := i + 1
	lo, j, ok := scanDecimal(t.runes, j)
	if !ok {
		return 0, t.syntaxf(errors.ErrBadQuantifier, i, "expected a count after '{'")
	}
	hi, bounded := lo, true
	if j < len(t.runes) && t.runes[j] == ',' {
		j++
		hi, j, bounded = scanDecimal(t.runes, j)
	}
	if j >= len(t.runes) || t.runes[j] != '}' {
		return 0, t.syntaxf(errors.ErrBadQuantifier, i, "unterminated {...} quantifier")
	}
	if lo > maxRepeatCount || (bounded && hi > maxRepeatCount) {
		return 0, t.syntaxf(errors.ErrBadQuantifier, i,
			"quantifier count exceeds %d", maxRepeatCount)
	}
	if bounded && hi < lo {
		return 0, t.syntaxf(errors.ErrBadQuantifier, i,
			"quantifier range {%d,%d} is inverted", lo, hi)
	}
	t.out.WriteString(string(t.runes[i : j+1]))
	t.canQuant = false
	t.prevQuant = quantGreedy
	return j + 1, nil
}

// maxRepeatCount bounds {n,m} counts. Larger values are rejected before
// they can wrap the accumulator or stall the host engine.
const maxRepeatCount = 1000000

func scanDecimal(runes []rune, i int) (int, int, bool) {
	v, start := 0, i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		if v <= maxRepeatCount {
			v = v*10 + int(runes[i]-'0')
		}
		i++
	}
	return v, i, i > start
}

// class extracts a bracketed class body, parses it, and emits its rendered
// form. Nested brackets only occur through class subtraction.
func (t *translator) class(i int) (int, error) {
	depth := 1
	for j := i + 1; j < len(t.runes); j++ {
		switch t.runes[j] {
		case '\\':
			j++
		case '[':
			depth++
		case ']':
			depth--
			if depth > 0 {
				continue
			}
			body := string(t.runes[i+1 : j])
			c, err := parseClass(t.pattern, body, i+1, t.opts)
			if err != nil {
				return 0, err
			}
			t.out.WriteString(c.String())
			t.atom()
			return j + 1, nil
		}
	}
	return 0, t.syntaxf(errors.ErrUnclosedClass, i, "character class is never closed")
}

func (t *translator) escape(i int) (int, error) {
	if i+1 >= len(t.runes) {
		return 0, t.syntaxf(errors.ErrBadEscape, i, "pattern ends with a lone backslash")
	}
	switch e := t.runes[i+1]; e {
	case 'i', 'I', 'c', 'C':
		subset := t.opts.registry.Shortcut(nameShortcutKey(e))
		if e == 'i' || e == 'c' {
			t.out.WriteString("[" + subset.String() + "]")
		} else {
			t.out.WriteString("[^" + subset.String() + "]")
		}
		t.atom()
		return i + 2, nil

	case 'p', 'P':
		name, next, err := parsePropertyName(t.pattern, t.runes, i, 0)
		if err != nil {
			return 0, err
		}
		subset, err := resolveProperty(t.opts, name)
		if err != nil {
			return 0, err
		}
		if e == 'p' {
			t.out.WriteString("[" + subset.String() + "]")
		} else {
			t.out.WriteString("[^" + subset.String() + "]")
		}
		t.atom()
		return next, nil

	default:
		t.out.WriteRune('\\')
		t.out.WriteRune(e)
		t.atom()
		return i + 2, nil
	}
}

func nameShortcutKey(e rune) unicodedata.Shortcut {
	if e == 'i' || e == 'I' {
		return unicodedata.ShortcutNameStart
	}
	return unicodedata.ShortcutNameChar
}
