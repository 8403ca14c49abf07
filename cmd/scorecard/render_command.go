package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scorecard/internal/clipboard"
	"scorecard/internal/config"
	"scorecard/internal/export"
	"scorecard/internal/logging"
	"scorecard/internal/playbyplay"
	"scorecard/internal/scorebook"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		teamFlag   string
		formatFlag string
		forceCopy  bool
		noCopy     bool
		xlsxPath   string
		minInnings int
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the scorebook grid for one team",
		Long: "Render reads a Baseball-Reference play-by-play export from a file or\n" +
			"stdin, keeps the target team's plate appearances, and prints a batter-by-\n" +
			"inning scorebook grid. The grid is also copied to the clipboard as TSV\n" +
			"when a clipboard is available.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if forceCopy && noCopy {
				return errors.New("--copy and --no-copy are mutually exclusive")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := newRunLogger(cmd, cfg, "render")
			if err != nil {
				return err
			}

			team, err := resolveTeam(cmd, teamFlag, cfg.Scorebook.Team)
			if err != nil {
				return err
			}
			format, err := resolveFormat(cmd, formatFlag, cfg.Output.Format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-innings") {
				minInnings = cfg.Scorebook.MinInnings
			}
			if minInnings < 1 {
				return fmt.Errorf("min-innings must be at least 1, got %d", minInnings)
			}

			input, source, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer input.Close()

			game, err := playbyplay.Parse(input)
			if err != nil {
				return err
			}
			rows := game.TeamRows(team)
			board := scorebook.Accumulate(rows, game.Substitutions)
			headers, gridRows := board.Grid(minInnings)
			gridRows = displayRows(gridRows)

			logger.Info("scorebook built",
				logging.String(logging.FieldTeam, team),
				logging.String(logging.FieldSource, source),
				logging.Int(logging.FieldInnings, len(headers)-1),
				logging.Int(logging.FieldBatters, len(gridRows)),
			)

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				fmt.Fprintln(out, renderTable(headers, gridRows, nil, shouldColorize(out, cfg.Output.Color)))
			case "tsv":
				fmt.Fprint(out, gridTSV(headers, gridRows))
			case "csv":
				payload, err := gridCSV(headers, gridRows)
				if err != nil {
					return fmt.Errorf("render csv: %w", err)
				}
				fmt.Fprint(out, payload)
			}

			copyEnabled := cfg.Output.Clipboard
			if forceCopy {
				copyEnabled = true
			}
			if noCopy {
				copyEnabled = false
			}
			if copyEnabled {
				notice := cmd.ErrOrStderr()
				svc := clipboard.NewService(true)
				if err := svc.Copy(gridTSV(headers, gridRows)); err != nil {
					logger.Debug("clipboard copy failed", logging.Error(err))
					fmt.Fprintln(notice, "Could not copy to clipboard. Please copy manually.")
				} else {
					fmt.Fprintln(notice, "Output copied to clipboard.")
				}
			}

			if xlsxPath != "" {
				target, err := config.ExpandPath(xlsxPath)
				if err != nil {
					return err
				}
				if err := export.WriteXLSX(target, headers, gridRows); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote workbook to %s\n", target)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&teamFlag, "team", "", "Target team code, e.g. MIL (default from config)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: table, tsv, or csv (default from config)")
	cmd.Flags().BoolVar(&forceCopy, "copy", false, "Copy the TSV grid to the clipboard even when config disables it")
	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Skip the clipboard copy")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the grid as an XLSX workbook at this path")
	cmd.Flags().IntVar(&minInnings, "min-innings", 0, "Minimum number of inning columns (default from config)")
	return cmd
}

// resolveFormat picks the console format from the flag when set, falling
// back to the config, and rejects formats the renderers cannot produce.
func resolveFormat(cmd *cobra.Command, flagValue, configValue string) (string, error) {
	format := configValue
	if cmd.Flags().Changed("format") {
		format = flagValue
	}
	switch format {
	case "table", "tsv", "csv":
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected table, tsv, or csv)", format)
}
