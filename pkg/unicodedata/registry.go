// Package unicodedata resolves Unicode category and block names to code
// point subsets for a specific Unicode version. A process-wide immutable
// snapshot is swapped atomically by the install operations; readers always
// see a complete registry.
package unicodedata

import (
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/codepoints"
)

// Shortcut enumerates the predefined classes shared by the translator
// (\s \d \w \i \c). Their subsets are computed once per registry snapshot.
type Shortcut int

const (
	// ShortcutWhitespace is the XSD \s class: space, tab, newline, return.
	ShortcutWhitespace Shortcut = iota
	// ShortcutDigit is the XSD \d class: Unicode decimal digits (Nd).
	ShortcutDigit
	// ShortcutWord is the XSD \w class: everything except P, Z, and C.
	ShortcutWord
	// ShortcutNameStart is the XML NameStartChar class (\i).
	ShortcutNameStart
	// ShortcutNameChar is the XML NameChar class (\c).
	ShortcutNameChar
)

// Registry is an immutable snapshot of one Unicode version's category and
// block data. Lazily built members are guarded internally, so concurrent
// lookups are safe.
type Registry struct {
	version    string
	categories map[string]*codepoints.Subset

	mu        sync.Mutex
	looseMap  map[string]*codepoints.Subset
	isMap     map[string]*codepoints.Subset
	noBlock   *codepoints.Subset
	shortcuts map[Shortcut]*codepoints.Subset
}

var current atomic.Pointer[Registry]

func init() {
	current.Store(baseRegistry())
}

// Default returns the currently installed registry snapshot.
func Default() *Registry {
	return current.Load()
}

// Install builds a registry for the given Unicode version by replaying the
// bundled diff tables over the runtime's base tables, then swaps it in. On
// failure the previous registry stays installed.
func Install(version string) error {
	r, err := buildFromDiffs(version)
	if err != nil {
		return err
	}
	current.Store(r)
	return nil
}

// Version returns the Unicode version the registry was built for.
func (r *Registry) Version() string {
	return r.version
}

// Category returns the subset for a category name such as "Lu" or "L".
// Callers must not mutate the returned subset.
func (r *Registry) Category(name string) (*codepoints.Subset, error) {
	s, ok := r.categories[name]
	if !ok {
		return nil, &errors.LookupError{Code: errors.ErrUnknownCategory, Name: name}
	}
	return s, nil
}

// SubsetFor resolves a property name the way \p{...} does: an "Is" prefix
// selects a block under the XSD convention, anything else a category.
func (r *Registry) SubsetFor(name string) (*codepoints.Subset, error) {
	if rest, ok := cutIsPrefix(name); ok {
		return r.Block(rest, false)
	}
	return r.Category(name)
}

func cutIsPrefix(name string) (string, bool) {
	if len(name) > 2 && name[0] == 'I' && name[1] == 's' {
		return name[2:], true
	}
	return "", false
}

// Shortcut returns the subset of one of the predefined classes. The value
// is memoized per registry snapshot; installing a new registry starts from
// an empty memo.
func (r *Registry) Shortcut(k Shortcut) *codepoints.Subset {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.shortcuts == nil {
		r.shortcuts = make(map[Shortcut]*codepoints.Subset, 5)
	}
	if s, ok := r.shortcuts[k]; ok {
		return s
	}
	s := r.buildShortcut(k)
	r.shortcuts[k] = s
	return s
}

func (r *Registry) buildShortcut(k Shortcut) *codepoints.Subset {
	switch k {
	case ShortcutWhitespace:
		s, _ := codepoints.New(
			codepoints.Point(' '),
			codepoints.Point('\t'),
			codepoints.Point('\n'),
			codepoints.Point('\r'),
		)
		return s
	case ShortcutDigit:
		if s, ok := r.categories["Nd"]; ok {
			return s
		}
		return mustEmpty()
	case ShortcutWord:
		nonWord := mustEmpty()
		for _, name := range []string{"P", "Z", "C"} {
			if s, ok := r.categories[name]; ok {
				nonWord.UpdateSubset(s)
			}
		}
		word, err := nonWord.Complement()
		if err != nil {
			return mustEmpty()
		}
		return word
	case ShortcutNameStart:
		s, _ := codepoints.New(nameStartRanges...)
		return s
	case ShortcutNameChar:
		s, _ := codepoints.New(nameCharRanges...)
		return s
	}
	return mustEmpty()
}

func mustEmpty() *codepoints.Subset {
	s, _ := codepoints.New()
	return s
}

// XML 1.0 NameStartChar and NameChar ranges.
var nameStartRanges = []codepoints.CodePoint{
	codepoints.Point(':'),
	codepoints.Interval('A', 'Z'+1),
	codepoints.Point('_'),
	codepoints.Interval('a', 'z'+1),
	codepoints.Interval(0xC0, 0xD6+1),
	codepoints.Interval(0xD8, 0xF6+1),
	codepoints.Interval(0xF8, 0x2FF+1),
	codepoints.Interval(0x370, 0x37D+1),
	codepoints.Interval(0x37F, 0x1FFF+1),
	codepoints.Interval(0x200C, 0x200D+1),
	codepoints.Interval(0x2070, 0x218F+1),
	codepoints.Interval(0x2C00, 0x2FEF+1),
	codepoints.Interval(0x3001, 0xD7FF+1),
	codepoints.Interval(0xF900, 0xFDCF+1),
	codepoints.Interval(0xFDF0, 0xFFFD+1),
	codepoints.Interval(0x10000, 0xEFFFF+1),
}

var nameCharRanges = append([]codepoints.CodePoint{
	codepoints.Point('-'),
	codepoints.Point('.'),
	codepoints.Interval('0', '9'+1),
	codepoints.Point(0xB7),
	codepoints.Interval(0x300, 0x36F+1),
	codepoints.Interval(0x203F, 0x2040+1),
}, nameStartRanges...)

// baseRegistry builds the registry for the Go runtime's own Unicode tables.
func baseRegistry() *Registry {
	return finalize(unicode.Version, baseTwoLetter())
}

// finalize derives the group categories (L, M, N, P, S, Z, C, LC) and the
// unassigned class Cn from a two-letter category map.
func finalize(version string, twoLetter map[string]*codepoints.Subset) *Registry {
	categories := make(map[string]*codepoints.Subset, len(twoLetter)+9)
	assigned := mustEmpty()
	groups := make(map[string]*codepoints.Subset)
	for name, s := range twoLetter {
		categories[name] = s
		assigned.UpdateSubset(s)
		group := name[:1]
		if groups[group] == nil {
			groups[group] = mustEmpty()
		}
		groups[group].UpdateSubset(s)
	}

	if _, ok := categories["Cn"]; !ok {
		unassigned, err := assigned.Complement()
		if err == nil {
			categories["Cn"] = unassigned
			if groups["C"] == nil {
				groups["C"] = mustEmpty()
			}
			groups["C"].UpdateSubset(unassigned)
		}
	}

	for name, s := range groups {
		categories[name] = s
	}

	cased := mustEmpty()
	for _, name := range []string{"Lu", "Ll", "Lt"} {
		if s, ok := categories[name]; ok {
			cased.UpdateSubset(s)
		}
	}
	categories["LC"] = cased

	return &Registry{version: version, categories: categories}
}
