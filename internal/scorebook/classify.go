package scorebook

import "strings"

// classifyRule pairs a trigger with the shorthand it produces. The rules
// run top to bottom and the first trigger that fires wins, so broader
// keywords sit below the phrases that contain them.
type classifyRule struct {
	trigger func(clause string) bool
	result  func(clause string) string
}

var classifyRules = []classifyRule{
	{contains("WALK"), literal("BB")},
	{contains("HIT BY PITCH"), literal("HBP")},
	{contains("SACRIFICE"), literal("SAC")},
	{contains("SINGLE"), literal("1B")},
	{contains("DOUBLE"), multiBaseHit("DOUBLE PLAY", "GDP", "2B")},
	{contains("TRIPLE"), multiBaseHit("TRIPLE PLAY", "GTP", "3B")},
	{containsAny("HOMERS", "HOME RUN"), literal("HR")},
	{containsAny("STRIKEOUT", "STRIKES OUT"), strikeout},
	{contains("GROUNDOUT"), groundout},
	{contains("LINEOUT"), airOut("L")},
	{contains("POPFLY"), airOut("P")},
	{contains("FLYBALL"), airOut("F")},
}

// Classify maps an uppercased play clause to scorebook shorthand. Clauses
// that match nothing classify to an empty string rather than an error; the
// caller renders them as a blank cell.
func Classify(clause string) string {
	if clause == "" {
		return ""
	}
	for _, rule := range classifyRules {
		if rule.trigger(clause) {
			return rule.result(clause)
		}
	}
	return ""
}

func contains(keyword string) func(string) bool {
	return func(clause string) bool {
		return strings.Contains(clause, keyword)
	}
}

func containsAny(keywords ...string) func(string) bool {
	return func(clause string) bool {
		for _, keyword := range keywords {
			if strings.Contains(clause, keyword) {
				return true
			}
		}
		return false
	}
}

func literal(shorthand string) func(string) string {
	return func(string) string {
		return shorthand
	}
}

// multiBaseHit renders a double or triple, switching to the double/triple
// play form with an assist chain when the clause names one.
func multiBaseHit(playPhrase, playShorthand, hitShorthand string) func(string) string {
	return func(clause string) string {
		if strings.Contains(clause, playPhrase) {
			return playShorthand + " " + AssistChain(clause)
		}
		return hitShorthand
	}
}

func strikeout(clause string) string {
	if strings.Contains(clause, "LOOKING") {
		return "K*"
	}
	return "K"
}

func groundout(clause string) string {
	if strings.Contains(clause, "UNASSISTED") {
		return PositionDigit(clause)
	}
	return AssistChain(clause)
}

// airOut renders lineouts, popflies, and flyballs: the out prefix, the
// fielder's digit, and an "f" suffix for foul territory.
func airOut(prefix string) func(string) string {
	return func(clause string) string {
		shorthand := prefix + PositionDigit(clause)
		if strings.Contains(clause, "FOUL") {
			shorthand += "f"
		}
		return shorthand
	}
}
