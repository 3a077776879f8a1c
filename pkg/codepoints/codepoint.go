// Package codepoints provides code point intervals and an ordered,
// disjoint-interval set with full set algebra. It backs the character class
// and Unicode property handling of the pattern translator and is usable on
// its own for XML name validation.
package codepoints

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jacoelho/xregexp/errors"
)

// MaxCodePoint is the largest valid Unicode code point.
const MaxCodePoint rune = 0x10FFFF

// CodePoint is a half-open interval [Lo, Hi) of code points. A single code
// point is the interval of length one.
type CodePoint struct {
	Lo, Hi rune
}

// Point returns the interval holding exactly r.
func Point(r rune) CodePoint {
	return CodePoint{Lo: r, Hi: r + 1}
}

// Interval returns the half-open interval [lo, hi).
func Interval(lo, hi rune) CodePoint {
	return CodePoint{Lo: lo, Hi: hi}
}

// Full is the interval covering the whole code space.
func Full() CodePoint {
	return CodePoint{Lo: 0, Hi: MaxCodePoint + 1}
}

func (c CodePoint) validate() error {
	if c.Lo < 0 || c.Lo >= c.Hi || c.Hi > MaxCodePoint+1 {
		return &errors.RangeError{Lo: c.Lo, Hi: c.Hi}
	}
	return nil
}

// IsScalar reports whether the interval holds a single code point.
func (c CodePoint) IsScalar() bool {
	return c.Hi == c.Lo+1
}

// Len returns the number of code points covered.
func (c CodePoint) Len() int {
	return int(c.Hi - c.Lo)
}

// Contains reports whether r falls inside the interval.
func (c CodePoint) Contains(r rune) bool {
	return c.Lo <= r && r < c.Hi
}

// classSpecials are characters that must be escaped when rendered inside a
// character class body.
const classSpecials = `-|.^?*+{}()[]\`

func reprRune(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if strings.ContainsRune(classSpecials, r) {
		return `\` + string(r)
	}
	return string(r)
}

// Repr renders the interval in character-range form: a single character, two
// characters, or "a-b" for anything longer.
func (c CodePoint) Repr() string {
	switch {
	case c.IsScalar():
		return reprRune(c.Lo)
	case c.Len() == 2:
		return reprRune(c.Lo) + reprRune(c.Hi - 1)
	default:
		return reprRune(c.Lo) + "-" + reprRune(c.Hi-1)
	}
}

// Merge sorts values by lower bound and coalesces any value that falls
// inside or adjacent to the running window. Windows longer than two code
// points come out as one interval, shorter ones as scalars:
// Merge over {10,11,12} yields (10,13) while {10,12} stays two scalars.
func Merge(points []CodePoint) []CodePoint {
	if len(points) == 0 {
		return nil
	}
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b CodePoint) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})

	var out []CodePoint
	window := sorted[0]
	for _, p := range sorted[1:] {
		if p.Lo <= window.Hi {
			if p.Hi > window.Hi {
				window.Hi = p.Hi
			}
			continue
		}
		out = emitWindow(out, window, false)
		window = p
	}
	return emitWindow(out, window, false)
}

// MergeReverse is Merge with descending output, sorted by upper bound. Bulk
// subset mutation walks its input high to low so index-based splicing of the
// interval list stays valid mid-update.
func MergeReverse(points []CodePoint) []CodePoint {
	if len(points) == 0 {
		return nil
	}
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b CodePoint) int {
		if c := cmp.Compare(b.Hi, a.Hi); c != 0 {
			return c
		}
		return cmp.Compare(b.Lo, a.Lo)
	})

	var out []CodePoint
	window := sorted[0]
	for _, p := range sorted[1:] {
		if p.Hi >= window.Lo {
			if p.Lo < window.Lo {
				window.Lo = p.Lo
			}
			continue
		}
		out = emitWindow(out, window, true)
		window = p
	}
	return emitWindow(out, window, true)
}

func emitWindow(out []CodePoint, w CodePoint, reverse bool) []CodePoint {
	if w.Len() > 2 {
		return append(out, w)
	}
	if reverse {
		for r := w.Hi - 1; r >= w.Lo; r-- {
			out = append(out, Point(r))
		}
		return out
	}
	for r := w.Lo; r < w.Hi; r++ {
		out = append(out, Point(r))
	}
	return out
}
