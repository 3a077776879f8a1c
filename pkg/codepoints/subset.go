package codepoints

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/jacoelho/xregexp/errors"
)

// Subset is an ordered set of code points stored as sorted, pairwise
// disjoint, coalesced intervals. Every mutation re-canonicalizes the
// interval list, so structural equality coincides with coverage equality.
type Subset struct {
	points []CodePoint
}

// New builds a subset from the given intervals.
func New(points ...CodePoint) (*Subset, error) {
	s := &Subset{}
	if err := s.Update(points...); err != nil {
		return nil, err
	}
	return s, nil
}

// Parse builds a subset from a character-range charset string such as
// "a-zA-Z_" using the class-body grammar.
func Parse(charset string) (*Subset, error) {
	points, err := parseCharset(charset, 0)
	if err != nil {
		return nil, err
	}
	return New(points...)
}

// FromRangeTable builds a subset covering every rune in t.
func FromRangeTable(t *unicode.RangeTable) *Subset {
	s := &Subset{points: make([]CodePoint, 0, len(t.R16)+len(t.R32))}
	appendRange := func(lo, hi, stride rune) {
		if stride == 1 {
			s.appendCoalesced(CodePoint{Lo: lo, Hi: hi + 1})
			return
		}
		for r := lo; r <= hi; r += stride {
			s.appendCoalesced(Point(r))
		}
	}
	for _, r := range t.R16 {
		appendRange(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range t.R32 {
		appendRange(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return s
}

// appendCoalesced appends p which must start at or after the current end.
func (s *Subset) appendCoalesced(p CodePoint) {
	if n := len(s.points); n > 0 && s.points[n-1].Hi >= p.Lo {
		if p.Hi > s.points[n-1].Hi {
			s.points[n-1].Hi = p.Hi
		}
		return
	}
	s.points = append(s.points, p)
}

// Add inserts an interval, merging with any intervals it touches or
// overlaps. Values outside the code space are a range error.
func (s *Subset) Add(p CodePoint) error {
	if err := p.validate(); err != nil {
		return err
	}
	i, _ := slices.BinarySearchFunc(s.points, p, func(a, b CodePoint) int {
		return cmp.Compare(a.Lo, b.Lo)
	})
	if i > 0 && s.points[i-1].Hi >= p.Lo {
		i--
	}
	j := i
	for j < len(s.points) && s.points[j].Lo <= p.Hi {
		if s.points[j].Lo < p.Lo {
			p.Lo = s.points[j].Lo
		}
		if s.points[j].Hi > p.Hi {
			p.Hi = s.points[j].Hi
		}
		j++
	}
	s.points = slices.Replace(s.points, i, j, p)
	return nil
}

// Discard removes an interval, splitting a straddled interval into the
// remaining pieces and dropping fully covered ones.
func (s *Subset) Discard(p CodePoint) error {
	if err := p.validate(); err != nil {
		return err
	}
	// first interval whose end reaches past p.Lo
	i, _ := slices.BinarySearchFunc(s.points, p.Lo, func(a CodePoint, lo rune) int {
		if a.Hi <= lo {
			return -1
		}
		return 1
	})
	j := i
	var kept []CodePoint
	for j < len(s.points) && s.points[j].Lo < p.Hi {
		q := s.points[j]
		if q.Lo < p.Lo {
			kept = append(kept, CodePoint{Lo: q.Lo, Hi: p.Lo})
		}
		if q.Hi > p.Hi {
			kept = append(kept, CodePoint{Lo: p.Hi, Hi: q.Hi})
		}
		j++
	}
	s.points = slices.Replace(s.points, i, j, kept...)
	return nil
}

// Update bulk-adds intervals, highest first.
func (s *Subset) Update(points ...CodePoint) error {
	for _, p := range MergeReverse(points) {
		if err := s.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// UpdateSubset adds every interval of other.
func (s *Subset) UpdateSubset(other *Subset) {
	for i := len(other.points) - 1; i >= 0; i-- {
		// other is canonical, values are in range
		_ = s.Add(other.points[i])
	}
}

// UpdateString adds the code points described by a charset string.
func (s *Subset) UpdateString(charset string) error {
	points, err := parseCharset(charset, 0)
	if err != nil {
		return err
	}
	return s.Update(points...)
}

// DifferenceUpdate bulk-removes intervals, highest first.
func (s *Subset) DifferenceUpdate(points ...CodePoint) error {
	for _, p := range MergeReverse(points) {
		if err := s.Discard(p); err != nil {
			return err
		}
	}
	return nil
}

// DifferenceUpdateString removes the code points described by a charset
// string.
func (s *Subset) DifferenceUpdateString(charset string) error {
	points, err := parseCharset(charset, 0)
	if err != nil {
		return err
	}
	return s.DifferenceUpdate(points...)
}

// DifferenceUpdateSubset removes every interval of other.
func (s *Subset) DifferenceUpdateSubset(other *Subset) {
	for i := len(other.points) - 1; i >= 0; i-- {
		_ = s.Discard(other.points[i])
	}
}

// Complement returns the gaps between the intervals plus the tail gap up to
// the end of the code space. An unsorted or overlapping interval list found
// mid-walk is reported as a range error, since it violates the set's
// invariant.
func (s *Subset) Complement() (*Subset, error) {
	points, err := s.complementPoints()
	if err != nil {
		return nil, err
	}
	return &Subset{points: points}, nil
}

func (s *Subset) complementPoints() ([]CodePoint, error) {
	var out []CodePoint
	next := rune(0)
	for _, p := range s.points {
		if p.Lo < next {
			return nil, fmt.Errorf("[%s] interval list unsorted at [%X, %X): %w",
				errors.ErrCodePointRange, p.Lo, p.Hi, &errors.RangeError{Lo: p.Lo, Hi: p.Hi})
		}
		if p.Lo > next {
			out = append(out, CodePoint{Lo: next, Hi: p.Lo})
		}
		next = p.Hi
	}
	if next <= MaxCodePoint {
		out = append(out, CodePoint{Lo: next, Hi: MaxCodePoint + 1})
	}
	return out, nil
}

// Union returns a new subset covering both sets.
func (s *Subset) Union(other *Subset) *Subset {
	out := s.Clone()
	out.UpdateSubset(other)
	return out
}

// Intersection returns a new subset covering only points in both sets.
func (s *Subset) Intersection(other *Subset) *Subset {
	out := &Subset{}
	i, j := 0, 0
	for i < len(s.points) && j < len(other.points) {
		a, b := s.points[i], other.points[j]
		lo := max(a.Lo, b.Lo)
		hi := min(a.Hi, b.Hi)
		if lo < hi {
			out.points = append(out.points, CodePoint{Lo: lo, Hi: hi})
		}
		if a.Hi < b.Hi {
			i++
		} else {
			j++
		}
	}
	return out
}

// Difference returns a new subset covering points in s but not in other.
func (s *Subset) Difference(other *Subset) *Subset {
	out := s.Clone()
	out.DifferenceUpdateSubset(other)
	return out
}

// SymmetricDifference returns a new subset covering points in exactly one
// of the two sets.
func (s *Subset) SymmetricDifference(other *Subset) *Subset {
	out := s.Difference(other)
	out.UpdateSubset(other.Difference(s))
	return out
}

// Contains reports whether r is in the set.
func (s *Subset) Contains(r rune) bool {
	_, ok := slices.BinarySearchFunc(s.points, r, func(p CodePoint, r rune) int {
		if p.Hi <= r {
			return -1
		}
		if p.Lo > r {
			return 1
		}
		return 0
	})
	return ok
}

// Len returns the exact number of code points covered, not the interval
// count.
func (s *Subset) Len() int {
	n := 0
	for _, p := range s.points {
		n += p.Len()
	}
	return n
}

// IsEmpty reports whether the set covers nothing.
func (s *Subset) IsEmpty() bool {
	return len(s.points) == 0
}

// Equal reports structural equality of the canonical interval lists.
func (s *Subset) Equal(other *Subset) bool {
	return slices.Equal(s.points, other.points)
}

// Clone returns an independent copy.
func (s *Subset) Clone() *Subset {
	return &Subset{points: slices.Clone(s.points)}
}

// Ranges yields the intervals in ascending order.
func (s *Subset) Ranges() iter.Seq[CodePoint] {
	return func(yield func(CodePoint) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Runes yields every covered code point in ascending order.
func (s *Subset) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, p := range s.points {
			for r := p.Lo; r < p.Hi; r++ {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// String renders the set in character-range form, suitable for a class body.
func (s *Subset) String() string {
	var b strings.Builder
	for _, p := range s.points {
		b.WriteString(p.Repr())
	}
	return b.String()
}

// RangeTable converts the subset to a stdlib range table for interop with
// the unicode package.
func (s *Subset) RangeTable() *unicode.RangeTable {
	runes := make([]rune, 0, s.Len())
	for r := range s.Runes() {
		runes = append(runes, r)
	}
	return rangetable.New(runes...)
}
