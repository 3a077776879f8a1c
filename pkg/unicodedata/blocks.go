package unicodedata

import (
	"strings"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/codepoints"
)

// Block returns the subset for a block name. With normalize, names are
// matched loosely per UAX#44 (case-insensitive, ignoring spaces, hyphens,
// and underscores). Without it, the XSD Is<Block> convention applies: exact
// names with spaces removed, plus the superseded names XSD 1.0 fixed at
// Unicode 3.1. The virtual "NoBlock" pseudo-block covers every code point
// outside a named block. Callers must not mutate the returned subset.
func (r *Registry) Block(name string, normalize bool) (*codepoints.Subset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buildBlockMapsLocked()

	var s *codepoints.Subset
	var ok bool
	if normalize {
		s, ok = r.looseMap[foldBlockName(name)]
	} else {
		s, ok = r.isMap[name]
	}
	if ok {
		return s, nil
	}
	if isNoBlockName(name, normalize) {
		return r.noBlockLocked()
	}
	return nil, &errors.LookupError{Code: errors.ErrUnknownBlock, Name: name}
}

func isNoBlockName(name string, normalize bool) bool {
	if normalize {
		return foldBlockName(name) == "noblock"
	}
	return name == "NoBlock"
}

// foldBlockName applies UAX#44 loose matching.
func foldBlockName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case ' ', '_', '-':
			continue
		}
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (r *Registry) buildBlockMapsLocked() {
	if r.looseMap != nil {
		return
	}
	r.looseMap = make(map[string]*codepoints.Subset, len(blockRanges))
	r.isMap = make(map[string]*codepoints.Subset, len(blockRanges)+len(blockAliases))
	for _, block := range blockRanges {
		s, err := codepoints.New(codepoints.Interval(block.lo, block.hi+1))
		if err != nil {
			continue
		}
		r.looseMap[foldBlockName(block.name)] = s
		r.isMap[strings.ReplaceAll(block.name, " ", "")] = s
	}
	for alias, canonical := range blockAliases {
		if s, ok := r.looseMap[foldBlockName(canonical)]; ok {
			r.isMap[alias] = s
		}
	}
}

// noBlockLocked builds the complement of the union of all named blocks on
// first request and memoizes it.
func (r *Registry) noBlockLocked() (*codepoints.Subset, error) {
	if r.noBlock != nil {
		return r.noBlock, nil
	}
	named := mustEmpty()
	for _, s := range r.looseMap {
		named.UpdateSubset(s)
	}
	noBlock, err := named.Complement()
	if err != nil {
		return nil, err
	}
	r.noBlock = noBlock
	return noBlock, nil
}
