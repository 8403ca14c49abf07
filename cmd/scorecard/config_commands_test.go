package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	contents, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample config: %v", err)
	}
	requireContains(t, string(contents), "[scorebook]")

	// Second init without --overwrite refuses to clobber the file.
	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, _, err := runCLI(t, []string{"config", "validate", "--config", cfgPath}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+cfgPath)
	requireContains(t, out, "Configuration valid")
}

func TestConfigShow(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, _, err := runCLI(t, []string{"config", "show", "--config", cfgPath}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "scorebook.team")
	requireContains(t, out, "MIL")
	requireContains(t, out, "output.clipboard")
	requireContains(t, out, "no")
}
