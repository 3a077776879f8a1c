package unicodedata

// releasedVersions lists the released Unicode versions, oldest first, per
// the Unicode Consortium's enumerated versions table.
var releasedVersions = []string{
	"2.1.8",
	"2.1.9",
	"3.0.0",
	"3.0.1",
	"3.1.0",
	"3.1.1",
	"3.2.0",
	"4.0.0",
	"4.0.1",
	"4.1.0",
	"5.0.0",
	"5.1.0",
	"5.2.0",
	"6.0.0",
	"6.1.0",
	"6.2.0",
	"6.3.0",
	"7.0.0",
	"8.0.0",
	"9.0.0",
	"10.0.0",
	"11.0.0",
	"12.0.0",
	"12.1.0",
	"13.0.0",
	"14.0.0",
	"15.0.0",
	"15.1.0",
	"16.0.0",
}
