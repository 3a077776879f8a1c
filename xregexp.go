// Package xregexp translates XSD and XPath regular expressions into the
// host dialect understood by github.com/dlclark/regexp2. It covers the
// constructs the schema grammar adds over common dialects, notably class
// subtraction [A-[B]], the \i \c name classes, and \p{...} properties
// resolved against a versioned Unicode data registry, and rejects the
// constructs the grammar forbids.
package xregexp

import (
	"context"
	"io"

	"github.com/dlclark/regexp2"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/codepoints"
	"github.com/jacoelho/xregexp/pkg/unicodedata"
)

// Compile translates a pattern and compiles the result with the host
// engine, using default options.
func Compile(pattern string) (*regexp2.Regexp, error) {
	return CompileWith(pattern, NewOptions())
}

// CompileWith translates a pattern with explicit options and compiles the
// result. A host engine rejection is reported as a pattern syntax error
// carrying the original pattern.
func CompileWith(pattern string, opts Options) (*regexp2.Regexp, error) {
	translated, err := TranslateWith(pattern, opts)
	if err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(translated, regexp2.Unicode)
	if err != nil {
		return nil, errors.NewSyntaxf(errors.ErrHostCompile, pattern, 0,
			"host engine rejected translation: %v", err)
	}
	return re, nil
}

// UnicodeCategory returns the subset of a Unicode general category such as
// "Lu" or "L" from the installed registry.
func UnicodeCategory(name string) (*codepoints.Subset, error) {
	return unicodedata.Default().Category(name)
}

// UnicodeBlock returns the subset of a Unicode block. With normalize the
// name is matched with Unicode's loose folding; without it the XSD Is-name
// convention applies.
func UnicodeBlock(name string, normalize bool) (*codepoints.Subset, error) {
	return unicodedata.Default().Block(name, normalize)
}

// UnicodeSubset resolves a property name the way \p{...} does: an Is prefix
// selects a block, anything else a category.
func UnicodeSubset(name string) (*codepoints.Subset, error) {
	return unicodedata.Default().SubsetFor(name)
}

// InstallUnicodeData switches the process-wide Unicode data to the given
// version using the bundled diff tables. Serialize installs against
// concurrent translations; on failure the previous data stays installed.
func InstallUnicodeData(version string) error {
	return unicodedata.Install(version)
}

// InstallUnicodeDataFromURL switches the process-wide Unicode data to a
// version fetched as a raw UnicodeData.txt feed.
func InstallUnicodeDataFromURL(ctx context.Context, version, url string) error {
	return unicodedata.InstallFromURL(ctx, version, url)
}

// InstallUnicodeDataFromReader switches the process-wide Unicode data to a
// version parsed from a raw UnicodeData.txt feed.
func InstallUnicodeDataFromReader(version string, feed io.Reader) error {
	return unicodedata.InstallFromReader(version, feed)
}
