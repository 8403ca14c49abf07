package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"scorecard/internal/playbyplay"
	"scorecard/internal/testsupport"
)

// sampleExport is a trimmed two-team export: prose, one pinch-hit sentence,
// the CSV header, and a handful of plays on each side.
var sampleExport = `Milwaukee Brewers vs Chicago Cubs, May 21 2025

Jake Bauers pinch hits for Hoby Milner batting 8th

` + playbyplay.Header + `
t1,0-0,0,---,"4(2-1)",O,MIL,Christian Yelich,Shota Imanaga,2%,54%,Single to RF (Line Drive)
t1,0-0,0,1--,"3(1-1)",O,MIL,Willy Adames,Shota Imanaga,3%,58%,"Double to LF (Ground Ball); Yelich Steals Third"
b1,0-0,0,---,"5(2-2)",O,CHC,Ian Happ,Freddy Peralta,-2%,56%,Strikeout Swinging
t2,0-0,0,---,"6(3-2)",O,MIL,Rhys Hoskins,Shota Imanaga,-2%,54%,Strikeout Looking
t2,0-0,1,---,"2(0-1)",O,MIL,Jake Bauers,Shota Imanaga,2%,56%,Single to CF (Line Drive)
t3,0-0,0,---,"3(1-1)",O,MIL,William Contreras,Shota Imanaga,-2%,54%,Groundout: SS-1B (Weak)
t3,0-0,1,1--,"2(0-1)",O,MIL,Joey Ortiz,Shota Imanaga,-4%,50%,"Ground Ball Double Play: SS-2B-1B; Bauers out at second"
`

// runCLI executes the root command with args against stdin content and
// returns captured stdout and stderr.
func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeTestConfig writes a config file pointing all side effects at a temp
// directory, with the clipboard and color off so runs are deterministic.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := fmt.Sprintf(`log_dir = %q

[output]
clipboard = false
color = "never"
`, filepath.Join(dir, "logs"))
	testsupport.WriteFile(t, path, contents)
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
