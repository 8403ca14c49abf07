package playbyplay

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Header is the column header line that anchors the CSV payload inside a
// Baseball-Reference play-by-play export. Everything before it is prose
// (navigation text, substitution notes); everything after it is data.
const Header = "Inn,Score,Out,RoB,Pit(cnt),R/O,@Bat,Batter,Pitcher,wWPA,wWE,Play Description"

// ErrHeaderNotFound reports input that never contains the expected header
// line, which usually means the paste was not a play-by-play CSV export.
var ErrHeaderNotFound = errors.New("play-by-play header not found")

// Column positions within one CSV record. Only four of the twelve columns
// feed the scorebook; the rest are dropped at parse time.
const (
	colInning      = 0
	colBattingTeam = 6
	colBatter      = 7
	colDescription = 11
	columnCount    = 12
)

// Row is one play retained from the export: the raw inning label, the
// batting team code, the cleaned batter name, and the full play description.
type Row struct {
	Inning      string
	BattingTeam string
	Batter      string
	Description string
}

// Export is a parsed play-by-play export covering both teams, together with
// the pinch-hit substitutions found anywhere in the raw text.
type Export struct {
	Rows          []Row
	Substitutions Substitutions
}

// TeamRows returns the rows whose batting team matches team exactly.
func (e *Export) TeamRows(team string) []Row {
	rows := make([]Row, 0, len(e.Rows))
	for _, row := range e.Rows {
		if row.BattingTeam == team {
			rows = append(rows, row)
		}
	}
	return rows
}

// Parse reads a full export, locates the CSV payload behind the header
// line, and scans every raw line for pinch-hit substitutions. Records
// missing any of the four retained columns are dropped; a missing header is
// the only fatal condition.
func Parse(r io.Reader) (*Export, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	headerIdx := -1
	for i, line := range lines {
		if line == Header {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: expected the line %q", ErrHeaderNotFound, Header)
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx+1:], "\n")))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse play-by-play csv: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if len(record) < columnCount {
			continue
		}
		rows = append(rows, Row{
			Inning:      record[colInning],
			BattingTeam: record[colBattingTeam],
			Batter:      cleanBatter(record[colBatter]),
			Description: record[colDescription],
		})
	}

	return &Export{
		Rows:          rows,
		Substitutions: ParseSubstitutions(lines),
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return lines, nil
}

// cleanBatter reduces a "First Last" batter value to its surname by dropping
// a single leading capitalized token. Single-token values pass through
// unchanged, as does a first token that is not capitalized.
func cleanBatter(value string) string {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return value
	}
	first, _ := utf8.DecodeRuneInString(fields[0])
	if unicode.IsUpper(first) {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}
