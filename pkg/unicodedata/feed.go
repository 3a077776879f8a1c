package unicodedata

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/codepoints"
)

// FeedURL returns the canonical UnicodeData.txt location for a version.
func FeedURL(version string) string {
	return "https://www.unicode.org/Public/" + version + "/ucd/UnicodeData.txt"
}

// InstallFromURL fetches a raw UnicodeData.txt feed and installs a registry
// built from it. The call is synchronous; cancellation is the caller's via
// ctx. On any failure the previous registry stays installed.
func InstallFromURL(ctx context.Context, versionStr, url string) error {
	if _, err := checkReleased(versionStr); err != nil {
		return &errors.InstallError{Code: errors.ErrBadVersion, Version: versionStr, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &errors.InstallError{Code: errors.ErrFeedFetch, Version: versionStr, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &errors.InstallError{Code: errors.ErrFeedFetch, Version: versionStr, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return &errors.InstallError{
			Code:    errors.ErrFeedFetch,
			Version: versionStr,
			Err:     fmt.Errorf("unexpected status %s from %s", resp.Status, url),
		}
	}
	return InstallFromReader(versionStr, resp.Body)
}

// InstallFromReader installs a registry built from a raw UnicodeData.txt
// feed. On any failure the previous registry stays installed.
func InstallFromReader(versionStr string, feed io.Reader) error {
	r, err := buildFromFeed(versionStr, feed)
	if err != nil {
		return err
	}
	current.Store(r)
	return nil
}

func buildFromFeed(versionStr string, feed io.Reader) (*Registry, error) {
	if _, err := checkReleased(versionStr); err != nil {
		return nil, &errors.InstallError{Code: errors.ErrBadVersion, Version: versionStr, Err: err}
	}
	twoLetter, err := parseFeed(feed)
	if err != nil {
		return nil, &errors.InstallError{Code: errors.ErrFeedParse, Version: versionStr, Err: err}
	}
	return finalize(versionStr, twoLetter), nil
}

// parseFeed reads UnicodeData.txt records: semicolon-separated fields with
// the code point, name, and general category in front. "First>"/"Last>"
// name markers delimit compressed ranges, and gaps between records are
// unassigned (Cn).
func parseFeed(feed io.Reader) (map[string]*codepoints.Subset, error) {
	perCategory := make(map[string][]codepoints.CodePoint)
	appendPoint := func(category string, p codepoints.CodePoint) {
		points := perCategory[category]
		// records arrive in code point order, so adjacency only needs a
		// look at the tail
		if n := len(points); n > 0 && points[n-1].Hi == p.Lo {
			points[n-1].Hi = p.Hi
			perCategory[category] = points
			return
		}
		perCategory[category] = append(points, p)
	}

	next := rune(0)
	var rangeFirst rune
	var rangeCategory string
	inRange := false

	scanner := bufio.NewScanner(feed)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 fields, got %d", lineNo, len(fields))
		}
		cp, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil || rune(cp) > codepoints.MaxCodePoint {
			return nil, fmt.Errorf("line %d: bad code point %q", lineNo, fields[0])
		}
		r := rune(cp)
		name, category := fields[1], fields[2]
		if category == "" {
			return nil, fmt.Errorf("line %d: empty category for %04X", lineNo, cp)
		}

		switch {
		case strings.HasSuffix(name, "First>"):
			if inRange {
				return nil, fmt.Errorf("line %d: nested First marker", lineNo)
			}
			if r > next {
				appendPoint("Cn", codepoints.Interval(next, r))
			}
			rangeFirst, rangeCategory, inRange = r, category, true
		case strings.HasSuffix(name, "Last>"):
			if !inRange || category != rangeCategory || r < rangeFirst {
				return nil, fmt.Errorf("line %d: Last marker without matching First", lineNo)
			}
			appendPoint(category, codepoints.Interval(rangeFirst, r+1))
			next, inRange = r+1, false
		default:
			if inRange {
				return nil, fmt.Errorf("line %d: record inside First/Last range", lineNo)
			}
			if r < next {
				return nil, fmt.Errorf("line %d: code point %04X out of order", lineNo, cp)
			}
			if r > next {
				appendPoint("Cn", codepoints.Interval(next, r))
			}
			appendPoint(category, codepoints.Point(r))
			next = r + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if inRange {
		return nil, fmt.Errorf("feed ends inside a First/Last range")
	}
	if next == 0 {
		return nil, fmt.Errorf("feed holds no records")
	}
	if next <= codepoints.MaxCodePoint {
		appendPoint("Cn", codepoints.Interval(next, codepoints.MaxCodePoint+1))
	}

	twoLetter := make(map[string]*codepoints.Subset, len(perCategory))
	for category, points := range perCategory {
		s, err := codepoints.New(points...)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", category, err)
		}
		twoLetter[category] = s
	}
	return twoLetter, nil
}
