package unicodedata

import "github.com/jacoelho/xregexp/pkg/codepoints"

// categoryDiffs holds per-version category changes derived from the Unicode
// Character Database, in increasing version order. Replay starts from the
// runtime's base tables, so entries at or below unicode.Version are skipped.
// Intervals are half-open; exclude entries carry recategorized points.
var categoryDiffs = []categoryDiff{
	{
		version: "15.1.0",
		insert: map[string][]codepoints.CodePoint{
			"Lo": {
				// CJK Unified Ideographs Extension I
				codepoints.Interval(0x2EBF0, 0x2EE5E),
			},
			"So": {
				// ideographic description characters
				codepoints.Interval(0x2FFC, 0x3000),
				codepoints.Point(0x31EF),
			},
		},
	},
	{
		version: "16.0.0",
		exclude: map[string][]codepoints.CodePoint{
			"Mn": {
				// AHOM CONSONANT SIGN MEDIAL RA became spacing
				codepoints.Point(0x1171E),
			},
		},
		insert: map[string][]codepoints.CodePoint{
			"Lu": {
				codepoints.Point(0x1C89),
				codepoints.Interval(0xA7CB, 0xA7CD),
				codepoints.Point(0xA7DA),
				codepoints.Point(0xA7DC),
				// Garay
				codepoints.Interval(0x10D50, 0x10D66),
			},
			"Ll": {
				codepoints.Point(0x1C8A),
				codepoints.Point(0xA7CD),
				codepoints.Point(0xA7DB),
				// Garay
				codepoints.Interval(0x10D70, 0x10D86),
			},
			"Lm": {
				// Garay
				codepoints.Point(0x10D4E),
				codepoints.Point(0x10D6F),
				// Kirat Rai
				codepoints.Interval(0x16D40, 0x16D43),
				codepoints.Interval(0x16D6B, 0x16D6D),
			},
			"Lo": {
				// Todhri
				codepoints.Interval(0x105C0, 0x105F4),
				// Garay
				codepoints.Interval(0x10D4A, 0x10D4E),
				codepoints.Point(0x10D4F),
				// Arabic Extended-C additions
				codepoints.Interval(0x10EC2, 0x10EC5),
				// Tulu-Tigalari
				codepoints.Interval(0x11380, 0x1138A),
				codepoints.Point(0x1138B),
				codepoints.Point(0x1138E),
				codepoints.Interval(0x11390, 0x113B6),
				codepoints.Point(0x113B7),
				codepoints.Point(0x113D1),
				codepoints.Point(0x113D3),
				// Sunuwar
				codepoints.Interval(0x11BC0, 0x11BE1),
				// Egyptian Hieroglyphs Extended-A
				codepoints.Interval(0x13460, 0x143FB),
				// Gurung Khema
				codepoints.Interval(0x16100, 0x1611E),
				// Kirat Rai
				codepoints.Interval(0x16D43, 0x16D6B),
				// Small Khitan Script additions
				codepoints.Point(0x18CFF),
				// Ol Onal
				codepoints.Interval(0x1E5D0, 0x1E5EE),
				codepoints.Point(0x1E5F0),
			},
			"Mn": {
				codepoints.Point(0x897),
				// Garay
				codepoints.Interval(0x10D69, 0x10D6E),
				codepoints.Point(0x10EFC),
				// Tulu-Tigalari
				codepoints.Interval(0x113BB, 0x113C1),
				codepoints.Point(0x113CE),
				codepoints.Point(0x113D0),
				codepoints.Point(0x113D2),
				codepoints.Interval(0x113E1, 0x113E3),
				codepoints.Point(0x11F5A),
				// Gurung Khema
				codepoints.Interval(0x1611E, 0x1612A),
				codepoints.Interval(0x1612D, 0x16130),
				// Ol Onal
				codepoints.Interval(0x1E5EE, 0x1E5F0),
			},
			"Mc": {
				// Tulu-Tigalari
				codepoints.Interval(0x113B8, 0x113BB),
				codepoints.Point(0x113C2),
				codepoints.Point(0x113C5),
				codepoints.Interval(0x113C7, 0x113CB),
				codepoints.Interval(0x113CC, 0x113CE),
				codepoints.Point(0x113CF),
				// Gurung Khema
				codepoints.Interval(0x1612A, 0x1612D),
				codepoints.Point(0x1171E),
			},
			"Nd": {
				// Garay
				codepoints.Interval(0x10D40, 0x10D4A),
				// Myanmar Extended-C
				codepoints.Interval(0x116D0, 0x116E4),
				// Sunuwar
				codepoints.Interval(0x11BF0, 0x11BFA),
				// Gurung Khema
				codepoints.Interval(0x16130, 0x1613A),
				// Kirat Rai
				codepoints.Interval(0x16D70, 0x16D7A),
				// outlined digits
				codepoints.Interval(0x1CCF0, 0x1CCFA),
				// Ol Onal
				codepoints.Interval(0x1E5F1, 0x1E5FB),
			},
			"Pd": {
				codepoints.Point(0x10D6E),
			},
			"Po": {
				codepoints.Interval(0x1B4E, 0x1B50),
				codepoints.Point(0x1B7F),
				// Tulu-Tigalari
				codepoints.Interval(0x113D4, 0x113D6),
				codepoints.Interval(0x113D7, 0x113D9),
				codepoints.Point(0x11BE1),
				// Kirat Rai
				codepoints.Interval(0x16D6D, 0x16D70),
				codepoints.Point(0x1E5FF),
			},
			"Sm": {
				codepoints.Interval(0x10D8E, 0x10D90),
			},
			"So": {
				codepoints.Interval(0x2427, 0x242A),
				codepoints.Interval(0x31E4, 0x31E6),
				// Legacy Computing Supplement
				codepoints.Interval(0x1CC00, 0x1CCF0),
				codepoints.Interval(0x1CD00, 0x1CEB4),
				codepoints.Interval(0x1F8B2, 0x1F8BC),
				codepoints.Interval(0x1F8C0, 0x1F8C2),
				codepoints.Point(0x1FA89),
				codepoints.Point(0x1FA8F),
				codepoints.Point(0x1FABE),
				codepoints.Point(0x1FAC6),
				codepoints.Point(0x1FADC),
				codepoints.Point(0x1FADF),
				codepoints.Point(0x1FAE9),
				codepoints.Interval(0x1FBCB, 0x1FBF0),
			},
		},
	},
}
