package scorebook

import (
	"strconv"
	"strings"

	"scorecard/internal/playbyplay"
	"scorecard/internal/textutil"
)

// Event is everything the scorebook takes from one play: the inning, the
// lineup batter it belongs to, the classified shorthand, and the run and
// baserunning credits counted out of the full description. Runner names in
// Steals and Caught are already resolved to their lineup slots.
type Event struct {
	Inning    int
	Batter    string
	Clause    string
	Shorthand string
	RBI       int
	Steals    []string
	Caught    []string
}

// Events derives one event per usable row, in input order. Rows whose
// inning label carries no digits are dropped.
func Events(rows []playbyplay.Row, subs playbyplay.Substitutions) []Event {
	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		if event, ok := newEvent(row, subs); ok {
			events = append(events, event)
		}
	}
	return events
}

// Accumulate builds a board from filtered team rows and the substitution
// table, applying events in input order.
func Accumulate(rows []playbyplay.Row, subs playbyplay.Substitutions) *Board {
	board := NewBoard()
	for _, event := range Events(rows, subs) {
		board.Apply(event)
	}
	return board
}

// Apply folds one event into the board: the plate appearance first, then
// RBI tags, then baserunning credits.
func (b *Board) Apply(event Event) {
	b.AppendPlay(event.Inning, event.Batter, event.Shorthand)
	b.AppendRBI(event.Inning, event.Batter, event.RBI)
	for _, runner := range event.Steals {
		b.AppendStolenBase(event.Inning, runner)
	}
	for _, runner := range event.Caught {
		b.AppendCaughtStealing(event.Inning, runner)
	}
}

func newEvent(row playbyplay.Row, subs playbyplay.Substitutions) (Event, bool) {
	number, ok := inningNumber(row.Inning)
	if !ok {
		return Event{}, false
	}

	desc := strings.ToUpper(row.Description)
	clause := desc
	if idx := strings.Index(clause, "("); idx >= 0 {
		clause = clause[:idx]
	}
	batter := strings.ToUpper(row.Batter)

	// The fielder's choice check runs against the full description with the
	// row's own batter name, before any pinch substitution.
	var shorthand string
	if strings.Contains(desc, batter+" TO ") {
		shorthand = "FC"
	} else {
		shorthand = Classify(clause)
	}

	event := Event{
		Inning:    number,
		Batter:    subs.Resolve(batter),
		Clause:    strings.TrimSpace(clause),
		Shorthand: shorthand,
		RBI:       strings.Count(desc, "SCORES"),
	}

	if count := strings.Count(desc, "STEALS"); count > 0 {
		chunks := strings.Split(desc, "STEALS")
		for i := 0; i < count; i++ {
			runner := textutil.LastToken(chunks[i])
			if runner == "" {
				continue
			}
			event.Steals = append(event.Steals, subs.Resolve(runner))
		}
	}

	if count := strings.Count(desc, "CAUGHT STEALING"); count > 0 {
		before := desc[:strings.Index(desc, "CAUGHT STEALING")]
		if runner := textutil.LastToken(before); runner != "" {
			resolved := subs.Resolve(runner)
			for i := 0; i < count; i++ {
				event.Caught = append(event.Caught, resolved)
			}
		}
	}

	return event, true
}

func inningNumber(label string) (int, bool) {
	digits := textutil.Digits(label)
	if digits == "" {
		return 0, false
	}
	number, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return number, true
}
