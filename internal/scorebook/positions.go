package scorebook

import "strings"

// positionDigits maps fielding position codes to scorebook digits. Order is
// load-bearing: the single-letter P and C codes also occur inside LF, CF,
// RF, and HIT BY PITCH, so they must be tried last.
var positionDigits = []struct {
	code  string
	digit string
}{
	{"1B", "3"},
	{"2B", "4"},
	{"3B", "5"},
	{"SS", "6"},
	{"LF", "7"},
	{"CF", "8"},
	{"RF", "9"},
	{"P", "1"},
	{"C", "2"},
}

// PositionDigit returns the scorebook digit for the first position code
// found inside fragment, or an empty string when none is present. Fragment
// is expected to be uppercase.
func PositionDigit(fragment string) string {
	for _, pos := range positionDigits {
		if strings.Contains(fragment, pos.code) {
			return pos.digit
		}
	}
	return ""
}
