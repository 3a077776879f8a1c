// Package errors defines the error codes and kinds reported by the
// xregexp translator and its Unicode registry.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a translation or registry failure class.
type ErrorCode string

const (
	// ErrEmptyClass indicates an empty [] character class.
	ErrEmptyClass ErrorCode = "regex-syntax-empty-class"
	// ErrUnclosedClass indicates a character class without a closing bracket.
	ErrUnclosedClass ErrorCode = "regex-syntax-unclosed-class"
	// ErrStrayBracket indicates an unmatched [ or ] inside a class body.
	ErrStrayBracket ErrorCode = "regex-syntax-stray-bracket"
	// ErrBadRange indicates a character range whose start exceeds its end.
	ErrBadRange ErrorCode = "regex-syntax-bad-range"
	// ErrBadEscape indicates an escape sequence the grammar does not define.
	ErrBadEscape ErrorCode = "regex-syntax-bad-escape"
	// ErrForbiddenEscape indicates an escape rejected by the pre-scan.
	ErrForbiddenEscape ErrorCode = "regex-syntax-forbidden-escape"
	// ErrBadQuantifier indicates a quantifier with no preceding atom or an
	// invalid {n,m} form.
	ErrBadQuantifier ErrorCode = "regex-syntax-bad-quantifier"
	// ErrStackedQuantifier indicates a quantifier applied to a quantifier.
	ErrStackedQuantifier ErrorCode = "regex-syntax-stacked-quantifier"
	// ErrGroupPrefix indicates a (?...) extension group form.
	ErrGroupPrefix ErrorCode = "regex-syntax-group-prefix"
	// ErrUnbalancedParen indicates a ')' without a matching '('.
	ErrUnbalancedParen ErrorCode = "regex-syntax-unbalanced-paren"
	// ErrUnclosedGroup indicates a '(' left open at end of pattern.
	ErrUnclosedGroup ErrorCode = "regex-syntax-unclosed-group"
	// ErrAnchor indicates ^ or $ while anchors are disabled.
	ErrAnchor ErrorCode = "regex-syntax-anchor"
	// ErrHostCompile indicates the host engine rejected the translation.
	ErrHostCompile ErrorCode = "regex-syntax-host-compile"

	// ErrUnknownCategory indicates an unknown Unicode category name.
	ErrUnknownCategory ErrorCode = "regex-lookup-category"
	// ErrUnknownBlock indicates an unknown Unicode block name.
	ErrUnknownBlock ErrorCode = "regex-lookup-block"

	// ErrCodePointRange indicates a code point or interval outside the
	// valid code space.
	ErrCodePointRange ErrorCode = "regex-range-codepoint"

	// ErrBadVersion indicates an unknown Unicode version string.
	ErrBadVersion ErrorCode = "regex-install-version"
	// ErrNoDiffData indicates no diff chain reaches the requested version.
	ErrNoDiffData ErrorCode = "regex-install-no-diff-data"
	// ErrFeedFetch indicates the raw data feed could not be retrieved.
	ErrFeedFetch ErrorCode = "regex-install-feed-fetch"
	// ErrFeedParse indicates the raw data feed could not be parsed.
	ErrFeedParse ErrorCode = "regex-install-feed-parse"
)

// SyntaxError describes a malformed pattern, with the rune position of the
// offending construct and the input it occurred in.
type SyntaxError struct {
	Code     ErrorCode
	Message  string
	Pattern  string
	Position int
}

// Error formats the syntax error with code, message, position, and input.
func (e *SyntaxError) Error() string {
	if e == nil {
		return "syntax error <nil>"
	}
	return fmt.Sprintf("[%s] %s at position %d in %q", e.Code, e.Message, e.Position, e.Pattern)
}

// NewSyntaxf builds a SyntaxError with a formatted message.
func NewSyntaxf(code ErrorCode, pattern string, pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pattern:  pattern,
		Position: pos,
	}
}

// LookupError describes a failed Unicode category or block lookup.
type LookupError struct {
	Code ErrorCode
	Name string
}

// Error formats the lookup error.
func (e *LookupError) Error() string {
	if e == nil {
		return "lookup error <nil>"
	}
	switch e.Code {
	case ErrUnknownBlock:
		return fmt.Sprintf("[%s] unknown Unicode block %q", e.Code, e.Name)
	default:
		return fmt.Sprintf("[%s] unknown Unicode category %q", e.Code, e.Name)
	}
}

// RangeError describes a code point or interval outside [0, 0x10FFFF],
// or an interval whose start is not below its end.
type RangeError struct {
	Lo, Hi rune
}

// Error formats the range error.
func (e *RangeError) Error() string {
	if e == nil {
		return "range error <nil>"
	}
	if e.Hi == e.Lo+1 {
		return fmt.Sprintf("[%s] code point %#U outside valid code space", ErrCodePointRange, e.Lo)
	}
	return fmt.Sprintf("[%s] invalid code point interval [%X, %X)", ErrCodePointRange, e.Lo, e.Hi)
}

// InstallError describes a failed Unicode data installation. The previously
// installed registry stays in place when one is reported.
type InstallError struct {
	Code    ErrorCode
	Version string
	Err     error
}

// Error formats the install error with its version and cause.
func (e *InstallError) Error() string {
	if e == nil {
		return "install error <nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] installing Unicode %s: %v", e.Code, e.Version, e.Err)
	}
	return fmt.Sprintf("[%s] installing Unicode %s", e.Code, e.Version)
}

// Unwrap exposes the underlying cause, if any.
func (e *InstallError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AsSyntax extracts a SyntaxError from an error chain.
func AsSyntax(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsLookup extracts a LookupError from an error chain.
func AsLookup(err error) (*LookupError, bool) {
	var le *LookupError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
