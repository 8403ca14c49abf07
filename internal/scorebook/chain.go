package scorebook

import "strings"

// AssistChain extracts the fielding chain from a play clause. Every
// hyphenated token is split into position codes, each code resolved to its
// scorebook digit, and the digits joined back with hyphens, so
// "Groundout: SS-2B-1B" becomes "6-4-3". Codes that resolve to nothing are
// dropped; a clause with no resolvable hyphenated token yields an empty
// string.
func AssistChain(clause string) string {
	var digits []string
	for _, token := range strings.Fields(clause) {
		if !strings.Contains(token, "-") {
			continue
		}
		for _, code := range strings.Split(token, "-") {
			if digit := PositionDigit(code); digit != "" {
				digits = append(digits, digit)
			}
		}
	}
	return strings.Join(digits, "-")
}
