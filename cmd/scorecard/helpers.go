package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scorecard/internal/config"
	"scorecard/internal/logging"
)

// openInput returns a reader over the play-by-play export named by args, or
// the command's stdin when no file (or "-") is given, plus a source label
// for logging. When stdin is a terminal a paste prompt goes to stderr so
// interactive runs know the command is waiting.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		in := cmd.InOrStdin()
		if file, ok := in.(*os.File); ok && isTerminal(file) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Paste the play-by-play export, then press Ctrl-D.")
		}
		return io.NopCloser(in), "stdin", nil
	}

	path, err := config.ExpandPath(args[0])
	if err != nil {
		return nil, "", err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open play-by-play export: %w", err)
	}
	return file, path, nil
}

// newRunLogger builds the component logger for one command run and stamps a
// fresh correlation ID onto the command's context so every record from the
// run is greppable as a unit.
func newRunLogger(cmd *cobra.Command, cfg *config.Config, component string) (*slog.Logger, error) {
	base, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithCorrelationID(cmd.Context(), uuid.NewString())
	cmd.SetContext(ctx)
	return logging.WithContext(ctx, logging.NewComponentLogger(base, component)), nil
}

// resolveTeam picks the target team from the flag when set, falling back to
// the config, and normalizes it to the uppercase code used by the export.
func resolveTeam(cmd *cobra.Command, flagValue, configValue string) (string, error) {
	team := configValue
	if cmd.Flags().Changed("team") {
		team = flagValue
	}
	team = strings.ToUpper(strings.TrimSpace(team))
	if team == "" {
		return "", errors.New("no team selected: pass --team or set scorebook.team in the config")
	}
	return team, nil
}
