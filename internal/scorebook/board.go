package scorebook

import (
	"sort"
	"strconv"
	"strings"
)

// Board accumulates scorebook cells keyed by inning number and batter.
// Batters are tracked in first-touch order per inning so the rendered row
// order is stable regardless of map iteration.
type Board struct {
	innings map[int]*inning
}

type inning struct {
	cells map[string]string
	order []string
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{innings: make(map[int]*inning)}
}

func (b *Board) inningFor(number int) *inning {
	in, ok := b.innings[number]
	if !ok {
		in = &inning{cells: make(map[string]string)}
		b.innings[number] = in
	}
	return in
}

func (in *inning) touch(batter string) {
	if _, ok := in.cells[batter]; !ok {
		in.cells[batter] = ""
		in.order = append(in.order, batter)
	}
}

// AppendPlay records a plate appearance. A cell that already holds text
// gains "; " plus the new shorthand; an empty or fresh cell takes the
// shorthand as-is, even when it is blank.
func (b *Board) AppendPlay(number int, batter, shorthand string) {
	in := b.inningFor(number)
	in.touch(batter)
	if current := in.cells[batter]; current != "" {
		in.cells[batter] = current + "; " + shorthand
	} else {
		in.cells[batter] = shorthand
	}
}

// AppendRBI tags the batter's cell once per run batted in. A cell that is
// still blank after the play append stays blank.
func (b *Board) AppendRBI(number int, batter string, count int) {
	in := b.inningFor(number)
	in.touch(batter)
	if in.cells[batter] == "" {
		return
	}
	in.cells[batter] += strings.Repeat(", RBI", count)
}

// AppendStolenBase credits a stolen base to the runner's cell for the
// inning, creating the cell when the runner has no entry yet.
func (b *Board) AppendStolenBase(number int, runner string) {
	in := b.inningFor(number)
	in.touch(runner)
	in.cells[runner] += ", SB"
}

// AppendCaughtStealing credits a caught stealing to the runner's cell for
// the inning, creating the cell when the runner has no entry yet.
func (b *Board) AppendCaughtStealing(number int, runner string) {
	in := b.inningFor(number)
	in.touch(runner)
	in.cells[runner] += ", CS"
}

// Cell returns the accumulated shorthand for the batter in the inning, or
// an empty string when nothing is recorded.
func (b *Board) Cell(number int, batter string) string {
	in, ok := b.innings[number]
	if !ok {
		return ""
	}
	return in.cells[batter]
}

// MaxInning returns the highest inning recorded, or 0 for an empty board.
func (b *Board) MaxInning() int {
	max := 0
	for number := range b.innings {
		if number > max {
			max = number
		}
	}
	return max
}

// BatterOrder lists batters by first appearance, walking innings in
// ascending numeric order and preserving touch order within each inning.
func (b *Board) BatterOrder() []string {
	numbers := make([]int, 0, len(b.innings))
	for number := range b.innings {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	seen := make(map[string]struct{})
	var order []string
	for _, number := range numbers {
		for _, batter := range b.innings[number].order {
			if _, ok := seen[batter]; ok {
				continue
			}
			seen[batter] = struct{}{}
			order = append(order, batter)
		}
	}
	return order
}

// Grid flattens the board into a header row and one row per batter. Inning
// columns always span 1..max(minInnings, highest recorded inning); missing
// cells render empty.
func (b *Board) Grid(minInnings int) ([]string, [][]string) {
	last := b.MaxInning()
	if last < minInnings {
		last = minInnings
	}

	headers := make([]string, 0, last+1)
	headers = append(headers, "Batter")
	for number := 1; number <= last; number++ {
		headers = append(headers, strconv.Itoa(number))
	}

	batters := b.BatterOrder()
	rows := make([][]string, 0, len(batters))
	for _, batter := range batters {
		row := make([]string, 0, last+1)
		row = append(row, batter)
		for number := 1; number <= last; number++ {
			row = append(row, b.Cell(number, batter))
		}
		rows = append(rows, row)
	}
	return headers, rows
}
