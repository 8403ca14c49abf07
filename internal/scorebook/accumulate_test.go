package scorebook_test

import (
	"reflect"
	"testing"

	"scorecard/internal/playbyplay"
	"scorecard/internal/scorebook"
)

func row(inning, batter, desc string) playbyplay.Row {
	return playbyplay.Row{
		Inning:      inning,
		BattingTeam: "MIL",
		Batter:      batter,
		Description: desc,
	}
}

func TestEventsClassifyAndCount(t *testing.T) {
	rows := []playbyplay.Row{
		row("t1", "Yelich", "Single to LF (Ground Ball)"),
		row("t1", "Contreras", "Jones Strikes Out Looking"),
		row("t4", "Ortiz", "Jones Singles. Smith SCORES. Doe SCORES."),
	}

	events := scorebook.Events(rows, nil)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	if events[0].Inning != 1 || events[0].Shorthand != "1B" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[0].Clause != "SINGLE TO LF" {
		t.Fatalf("clause = %q, want parenthetical stripped", events[0].Clause)
	}
	if events[1].Shorthand != "K*" {
		t.Fatalf("looking strikeout shorthand = %q, want K*", events[1].Shorthand)
	}
	if events[2].Inning != 4 || events[2].RBI != 2 {
		t.Fatalf("unexpected RBI event: %+v", events[2])
	}
}

func TestEventsSkipRowsWithoutInningDigits(t *testing.T) {
	rows := []playbyplay.Row{
		row("top", "Yelich", "Single"),
		row("t2", "Yelich", "Single"),
	}
	events := scorebook.Events(rows, nil)
	if len(events) != 1 || events[0].Inning != 2 {
		t.Fatalf("expected only the t2 event, got %+v", events)
	}
}

func TestEventsFieldersChoiceOverride(t *testing.T) {
	rows := []playbyplay.Row{
		row("b3", "Hoskins", "Fielders Choice: SS-2B; Contreras out at second; Hoskins to 1B"),
	}
	events := scorebook.Events(rows, nil)
	if events[0].Shorthand != "FC" {
		t.Fatalf("shorthand = %q, want FC", events[0].Shorthand)
	}
}

func TestEventsFieldersChoiceUsesRowBatterBeforeSubstitution(t *testing.T) {
	subs := playbyplay.Substitutions{"BAUERS": "MILNER"}
	rows := []playbyplay.Row{
		row("t7", "Bauers", "Fielders Choice: 3B; Bauers to 1B"),
	}
	events := scorebook.Events(rows, subs)
	if events[0].Shorthand != "FC" {
		t.Fatalf("shorthand = %q, want FC", events[0].Shorthand)
	}
	if events[0].Batter != "MILNER" {
		t.Fatalf("batter = %q, want MILNER (resolved)", events[0].Batter)
	}
}

func TestEventsStealRunnersResolveThroughSubstitutions(t *testing.T) {
	subs := playbyplay.Substitutions{"BAUERS": "MILNER"}
	rows := []playbyplay.Row{
		row("t8", "Yelich", "Strikeout Swinging; Bauers Steals 2B; Frelick Steals 3B"),
	}
	events := scorebook.Events(rows, subs)
	want := []string{"MILNER", "FRELICK"}
	if !reflect.DeepEqual(events[0].Steals, want) {
		t.Fatalf("steals = %v, want %v", events[0].Steals, want)
	}
}

func TestEventsCaughtStealingRunner(t *testing.T) {
	rows := []playbyplay.Row{
		row("b5", "Ortiz", "Strikeout Looking; Perkins Caught Stealing 2B (CS 2-6)"),
	}
	events := scorebook.Events(rows, nil)
	if !reflect.DeepEqual(events[0].Caught, []string{"PERKINS"}) {
		t.Fatalf("caught = %v, want [PERKINS]", events[0].Caught)
	}
	if events[0].Shorthand != "K*" {
		t.Fatalf("shorthand = %q, want K*", events[0].Shorthand)
	}
}

func TestAccumulateRBIOnlyOnNonEmptyCell(t *testing.T) {
	rows := []playbyplay.Row{
		row("t4", "Ortiz", "Jones Singles. Smith SCORES. Doe SCORES."),
	}
	board := scorebook.Accumulate(rows, nil)
	if got := board.Cell(4, "ORTIZ"); got != "1B, RBI, RBI" {
		t.Fatalf("cell = %q, want %q", got, "1B, RBI, RBI")
	}
}

func TestAccumulateMergesSecondPlateAppearance(t *testing.T) {
	rows := []playbyplay.Row{
		row("7", "Yelich", "Double to RF"),
		row("7", "Yelich", "Strikeout Swinging"),
	}
	board := scorebook.Accumulate(rows, nil)
	if got := board.Cell(7, "YELICH"); got != "2B; K" {
		t.Fatalf("cell = %q, want %q", got, "2B; K")
	}
}

func TestAccumulateCreditsStealsToOriginalSlot(t *testing.T) {
	subs := playbyplay.Substitutions{"BAUERS": "MILNER"}
	rows := []playbyplay.Row{
		row("t8", "Ortiz", "Strikeout Swinging; Bauers Steals 2B"),
	}
	board := scorebook.Accumulate(rows, subs)
	if got := board.Cell(8, "MILNER"); got != ", SB" {
		t.Fatalf("MILNER cell = %q, want %q", got, ", SB")
	}
	if got := board.Cell(8, "BAUERS"); got != "" {
		t.Fatalf("BAUERS cell = %q, want empty", got)
	}
}

func TestAccumulateCaughtStealingResolvesRunnerName(t *testing.T) {
	// The caught runner resolves through the substitution table under its
	// own name, independent of any steal earlier in the description.
	subs := playbyplay.Substitutions{"BAUERS": "MILNER"}
	rows := []playbyplay.Row{
		row("t9", "Ortiz", "Strikeout Swinging; Bauers Caught Stealing 2B (CS 2-6)"),
	}
	board := scorebook.Accumulate(rows, subs)
	if got := board.Cell(9, "MILNER"); got != ", CS" {
		t.Fatalf("MILNER cell = %q, want %q", got, ", CS")
	}
}
