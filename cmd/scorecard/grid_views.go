package main

import (
	"encoding/csv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// displayRows converts accumulated grid rows for presentation: the batter
// column arrives uppercased from accumulation and is shown title-cased
// ("YELICH" -> "Yelich"). Shorthand cells pass through untouched.
func displayRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		display := make([]string, len(row))
		copy(display, row)
		if len(display) > 0 {
			display[0] = titleCaser.String(strings.ToLower(display[0]))
		}
		out = append(out, display)
	}
	return out
}

// gridTSV renders the grid as tab-separated lines, the payload handed to
// the clipboard so it pastes straight into a spreadsheet.
func gridTSV(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, "\t"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

// gridCSV renders the grid as RFC 4180 CSV, quoting cells that need it
// (multi-event cells contain "; " and RBI tags contain commas).
func gridCSV(headers []string, rows [][]string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(headers); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
