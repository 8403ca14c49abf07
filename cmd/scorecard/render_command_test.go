package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scorecard/internal/playbyplay"
)

func TestRenderTSVFromStdin(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, _, err := runCLI(t, []string{"render", "--config", cfgPath, "--team", "MIL", "--format", "tsv"}, sampleExport)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 batter rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Batter\t1\t2\t3\t4\t5\t6\t7\t8\t9" {
		t.Fatalf("unexpected header line %q", lines[0])
	}

	wantPrefixes := []string{
		"Yelich\t1B, SB\t\t",
		"Adames\t2B\t\t",
		"Hoskins\t\tK*\t",
		"Milner\t\t1B\t",
		"Contreras\t\t\t6-3",
		"Ortiz\t\t\tGDP 6-4-3",
	}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(lines[i+1], want) {
			t.Fatalf("row %d = %q, want prefix %q", i+1, lines[i+1], want)
		}
	}
}

func TestRenderTableFromFile(t *testing.T) {
	cfgPath := writeTestConfig(t)
	exportPath := filepath.Join(t.TempDir(), "game.txt")
	if err := os.WriteFile(exportPath, []byte(sampleExport), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}

	out, _, err := runCLI(t, []string{"render", "--config", cfgPath, "--team", "MIL", exportPath}, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	requireContains(t, out, "Batter")
	requireContains(t, out, "Yelich")
	requireContains(t, out, "1B, SB")
	requireContains(t, out, "GDP")
}

func TestRenderOpponentTeamIsEmptyGrid(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, _, err := runCLI(t, []string{"render", "--config", cfgPath, "--team", "SEA", "--format", "tsv"}, sampleExport)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the header row for an absent team, got:\n%s", out)
	}
}

func TestRenderMissingHeaderFails(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, _, err := runCLI(t, []string{"render", "--config", cfgPath, "--team", "MIL"}, "no play-by-play table here\n")
	if !errors.Is(err, playbyplay.ErrHeaderNotFound) {
		t.Fatalf("expected ErrHeaderNotFound, got %v", err)
	}
}

func TestRenderCopyFlagsConflict(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, _, err := runCLI(t, []string{"render", "--config", cfgPath, "--copy", "--no-copy"}, sampleExport)
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected mutual-exclusion error, got %v", err)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, _, err := runCLI(t, []string{"render", "--config", cfgPath, "--format", "yaml"}, sampleExport)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestRenderWritesWorkbook(t *testing.T) {
	cfgPath := writeTestConfig(t)
	workbook := filepath.Join(t.TempDir(), "out", "game.xlsx")

	_, errOut, err := runCLI(t, []string{"render", "--config", cfgPath, "--format", "tsv", "--xlsx", workbook}, sampleExport)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(workbook); err != nil {
		t.Fatalf("expected workbook at %s: %v", workbook, err)
	}
	requireContains(t, errOut, "Wrote workbook")
}
