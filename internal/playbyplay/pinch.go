package playbyplay

import (
	"strings"

	"scorecard/internal/textutil"
)

const pinchPhrase = "PINCH HITS FOR"

// Substitutions maps a pinch hitter's surname to the surname of the lineup
// batter they replaced. Names are uppercase, matching how batters appear in
// play descriptions.
type Substitutions map[string]string

// Resolve returns the original lineup batter for name, or name itself when
// no substitution is recorded.
func (s Substitutions) Resolve(name string) string {
	if original, ok := s[name]; ok {
		return original
	}
	return name
}

// ParseSubstitutions scans raw export lines for sentences like
// "Jake Bauers pinch hits for Hoby Milner batting 8th" and records
// BAUERS -> MILNER. The substitute is the last token before the phrase; the
// original is the second token after it, skipping the first name. Sentences
// without enough tokens on either side are skipped.
func ParseSubstitutions(lines []string) Substitutions {
	subs := make(Substitutions)
	for _, line := range lines {
		upper := strings.ToUpper(line)
		if !strings.Contains(upper, pinchPhrase) {
			continue
		}
		parts := strings.Split(upper, pinchPhrase)
		substitute := textutil.LastToken(parts[0])
		if substitute == "" {
			continue
		}
		after := strings.Fields(parts[1])
		if len(after) <= 2 {
			continue
		}
		subs[substitute] = after[1]
	}
	return subs
}
