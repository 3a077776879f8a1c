package unicodedata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/xregexp/errors"
	"github.com/jacoelho/xregexp/pkg/codepoints"
)

const feedSample = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0042;LATIN CAPITAL LETTER B;Lu;0;L;;;;;N;;;;0062;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;
9FFF;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;
`

func TestParseFeed(t *testing.T) {
	twoLetter, err := parseFeed(strings.NewReader(feedSample))
	require.NoError(t, err)

	lu := twoLetter["Lu"]
	require.Equal(t, 2, lu.Len())
	require.True(t, lu.Contains('A'))
	require.True(t, lu.Contains('B'))

	require.True(t, twoLetter["Ll"].Contains('a'))

	lo := twoLetter["Lo"]
	require.Equal(t, 0x9FFF-0x4E00+1, lo.Len())
	require.True(t, lo.Contains(0x4E00))
	require.True(t, lo.Contains(0x9FFF))
	require.False(t, lo.Contains(0xA000))

	// gaps between records and the tail after the last one are unassigned
	cn := twoLetter["Cn"]
	require.True(t, cn.Contains(0x0000))
	require.True(t, cn.Contains(0x0043))
	require.True(t, cn.Contains(0x0060))
	require.True(t, cn.Contains(0xA000))
	require.True(t, cn.Contains(codepoints.MaxCodePoint))
	require.False(t, cn.Contains('A'))
	assigned := 2 + 1 + (0x9FFF - 0x4E00 + 1)
	require.Equal(t, int(codepoints.MaxCodePoint)+1-assigned, cn.Len())
}

func TestParseFeedErrors(t *testing.T) {
	tests := []struct {
		name string
		feed string
	}{
		{name: "empty", feed: ""},
		{name: "too few fields", feed: "0041;LATIN CAPITAL LETTER A\n"},
		{name: "bad code point", feed: "GGGG;BOGUS;Lu;;\n"},
		{name: "out of order", feed: "0042;B;Lu;;\n0041;A;Lu;;\n"},
		{
			name: "last without first",
			feed: "9FFF;<CJK Ideograph, Last>;Lo;;\n",
		},
		{
			name: "record inside range",
			feed: "4E00;<CJK Ideograph, First>;Lo;;\n4E01;STRAY;Lo;;\n",
		},
		{
			name: "unterminated range",
			feed: "4E00;<CJK Ideograph, First>;Lo;;\n",
		},
		{
			name: "range category mismatch",
			feed: "4E00;<CJK Ideograph, First>;Lo;;\n9FFF;<CJK Ideograph, Last>;So;;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFeed(strings.NewReader(tt.feed))
			require.Error(t, err)
		})
	}
}

func TestBuildFromFeed(t *testing.T) {
	r, err := buildFromFeed("16.0.0", strings.NewReader(feedSample))
	require.NoError(t, err)
	require.Equal(t, "16.0.0", r.Version())

	l, err := r.Category("L")
	require.NoError(t, err)
	require.True(t, l.Contains('A'))
	require.True(t, l.Contains(0x4E00))

	// block tables are version independent
	basic, err := r.Block("BasicLatin", false)
	require.NoError(t, err)
	require.Equal(t, 128, basic.Len())
}

func TestBuildFromFeedRejectsUnknownVersion(t *testing.T) {
	_, err := buildFromFeed("17.3.9", strings.NewReader(feedSample))
	require.Error(t, err)
	var installErr *errors.InstallError
	require.ErrorAs(t, err, &installErr)
	require.Equal(t, errors.ErrBadVersion, installErr.Code)
}

func TestBuildFromFeedWrapsParseFailure(t *testing.T) {
	_, err := buildFromFeed("16.0.0", strings.NewReader("junk"))
	require.Error(t, err)
	var installErr *errors.InstallError
	require.ErrorAs(t, err, &installErr)
	require.Equal(t, errors.ErrFeedParse, installErr.Code)
}

func TestFeedURL(t *testing.T) {
	require.Equal(t,
		"https://www.unicode.org/Public/16.0.0/ucd/UnicodeData.txt",
		FeedURL("16.0.0"))
}
