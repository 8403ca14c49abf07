package scorebook_test

import (
	"testing"

	"scorecard/internal/scorebook"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		clause string
		want   string
	}{
		{"WALK", "BB"},
		{"HIT BY PITCH", "HBP"},
		{"SACRIFICE FLY TO RF", "SAC"},
		{"SINGLE TO LF", "1B"},
		{"DOUBLE TO DEEP RF", "2B"},
		{"GROUND BALL DOUBLE PLAY: SS-2B-1B", "GDP 6-4-3"},
		{"TRIPLE TO CF", "3B"},
		{"TRIPLE PLAY: 3B-2B-1B", "GTP 5-4-3"},
		{"HOMERS", "HR"},
		{"HOME RUN TO DEEP CF", "HR"},
		{"STRIKEOUT SWINGING", "K"},
		{"STRIKEOUT LOOKING", "K*"},
		{"STRIKES OUT LOOKING", "K*"},
		{"STRIKES OUT SWINGING", "K"},
		{"GROUNDOUT: 1B UNASSISTED", "3"},
		{"GROUNDOUT: SS-1B", "6-3"},
		{"LINEOUT: SS", "L6"},
		{"POPFLY: 2B", "P4"},
		{"FOUL POPFLY: 2B", "P4f"},
		{"FLYBALL: CF", "F8"},
		{"FOUL FLYBALL: RF", "F9f"},
		{"BALK", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := scorebook.Classify(tc.clause); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.clause, got, tc.want)
		}
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// A double-play groundout names both DOUBLE and GROUNDOUT; the DOUBLE
	// rule sits higher and must win.
	if got := scorebook.Classify("GROUNDOUT INTO DOUBLE PLAY: 6-4-3 SS-2B-1B"); got != "GDP 6-4-3" {
		t.Fatalf("Classify = %q, want GDP 6-4-3", got)
	}
	// A sacrifice fly is a SAC even though FLYBALL appears later in the
	// clause.
	if got := scorebook.Classify("SACRIFICE FLYBALL: CF"); got != "SAC" {
		t.Fatalf("Classify = %q, want SAC", got)
	}
}

func TestClassifyFoulOnlyMarksAirOuts(t *testing.T) {
	// FOUL decorates lineouts, popflies, and flyballs; it never reaches
	// strikeouts or groundouts.
	if got := scorebook.Classify("FOUL LINEOUT: 3B"); got != "L5f" {
		t.Fatalf("Classify = %q, want L5f", got)
	}
	if got := scorebook.Classify("STRIKEOUT SWINGING ON FOUL TIP"); got != "K" {
		t.Fatalf("Classify = %q, want K", got)
	}
}
