package unicodedata

import (
	"fmt"
	"unicode"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/codepoints"
)

// categoryDiff records the category changes one Unicode version introduces
// over its predecessor: code points removed from a category and ranges
// merged in.
type categoryDiff struct {
	version string
	exclude map[string][]codepoints.CodePoint
	insert  map[string][]codepoints.CodePoint
}

func baseTwoLetter() map[string]*codepoints.Subset {
	twoLetter := make(map[string]*codepoints.Subset)
	for name, table := range unicode.Categories {
		if len(name) != 2 {
			continue
		}
		twoLetter[name] = codepoints.FromRangeTable(table)
	}
	return twoLetter
}

// buildFromDiffs builds a registry for the requested version by replaying
// the bundled per-version diff tables, in increasing version order, over the
// runtime's base tables. Replay stops once a diff's version exceeds the
// requested one.
func buildFromDiffs(versionStr string) (*Registry, error) {
	requested, err := checkReleased(versionStr)
	if err != nil {
		return nil, &errors.InstallError{Code: errors.ErrBadVersion, Version: versionStr, Err: err}
	}

	base, err := parseVersion(unicode.Version)
	if err != nil {
		return nil, &errors.InstallError{Code: errors.ErrBadVersion, Version: versionStr, Err: err}
	}

	switch requested.compare(base) {
	case 0:
		return finalize(versionStr, baseTwoLetter()), nil
	case -1:
		return nil, &errors.InstallError{
			Code:    errors.ErrNoDiffData,
			Version: versionStr,
			Err:     fmt.Errorf("older than the runtime base %s; install from a data feed instead", unicode.Version),
		}
	}

	if len(categoryDiffs) == 0 || mustParseDiffVersion(categoryDiffs[len(categoryDiffs)-1].version).compare(requested) < 0 {
		return nil, &errors.InstallError{
			Code:    errors.ErrNoDiffData,
			Version: versionStr,
			Err:     fmt.Errorf("no diff table reaches past the runtime base %s", unicode.Version),
		}
	}

	twoLetter := baseTwoLetter()
	for _, diff := range categoryDiffs {
		dv := mustParseDiffVersion(diff.version)
		if dv.compare(base) <= 0 {
			continue
		}
		if dv.compare(requested) > 0 {
			break
		}
		if err := applyDiff(twoLetter, diff); err != nil {
			return nil, &errors.InstallError{Code: errors.ErrNoDiffData, Version: versionStr, Err: err}
		}
	}
	return finalize(versionStr, twoLetter), nil
}

func applyDiff(twoLetter map[string]*codepoints.Subset, diff categoryDiff) error {
	for name, points := range diff.exclude {
		s, ok := twoLetter[name]
		if !ok {
			continue
		}
		if err := s.DifferenceUpdate(points...); err != nil {
			return fmt.Errorf("diff %s, category %s: %w", diff.version, name, err)
		}
	}
	for name, points := range diff.insert {
		s, ok := twoLetter[name]
		if !ok {
			s = mustEmpty()
			twoLetter[name] = s
		}
		if err := s.Update(points...); err != nil {
			return fmt.Errorf("diff %s, category %s: %w", diff.version, name, err)
		}
	}
	return nil
}

func mustParseDiffVersion(s string) version {
	v, err := parseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("malformed diff table version %q: %v", s, err))
	}
	return v
}
