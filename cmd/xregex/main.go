package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/xregexp"
	xregexperrors "github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/unicodedata"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xregex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backReferences := fs.Bool("back-references", true, "allow capturing groups and \\1..\\9 escapes")
	lazyQuantifiers := fs.Bool("lazy-quantifiers", true, "allow a single ? after a quantifier")
	isSyntax := fs.Bool("is-syntax", true, "resolve unknown \\p{IsName} blocks to the full code space (XSD 1.1)")
	anchors := fs.Bool("anchors", true, "allow ^ and $; disabled matches whole strings only")
	match := fs.String("match", "", "test a string against the compiled translation")
	unicodeVersion := fs.String("unicode-version", "", "install this Unicode version before translating")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <pattern>\n\n", os.Args[0]),
			writeln(stderr, "Translates an XSD/XPath regular expression into the host dialect."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one pattern argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	pattern := remaining[0]

	if *unicodeVersion != "" {
		if err := unicodedata.Install(*unicodeVersion); err != nil {
			if writeErr := writef(stderr, "error installing Unicode data: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
	}

	opts := xregexp.NewOptions().
		WithBackReferences(*backReferences).
		WithLazyQuantifiers(*lazyQuantifiers).
		WithIsSyntax(*isSyntax).
		WithAnchors(*anchors)

	translated, err := xregexp.TranslateWith(pattern, opts)
	if err != nil {
		if syntaxErr, ok := xregexperrors.AsSyntax(err); ok {
			if writeErr := writef(stderr, "pattern error: %v\n", syntaxErr); writeErr != nil {
				return 1
			}
			return 1
		}
		if writeErr := writef(stderr, "error translating: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	if err := writeln(stdout, translated); err != nil {
		return 1
	}

	if *match == "" {
		return 0
	}
	re, err := xregexp.CompileWith(pattern, opts)
	if err != nil {
		if writeErr := writef(stderr, "error compiling: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}
	ok, err := re.MatchString(*match)
	if err != nil {
		if writeErr := writef(stderr, "error matching: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}
	if !ok {
		if writeErr := writef(stderr, "%q does not match\n", *match); writeErr != nil {
			return 1
		}
		return 1
	}
	if err := writef(stdout, "%q matches\n", *match); err != nil {
		return 1
	}
	return 0
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
