package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scorecard/internal/logging"
	"scorecard/internal/playbyplay"
	"scorecard/internal/scorebook"
)

// playView is the scripting-friendly shape of one classified play.
type playView struct {
	Inning         int    `json:"inning"`
	Batter         string `json:"batter"`
	Play           string `json:"play"`
	Shorthand      string `json:"shorthand"`
	RBI            int    `json:"rbi"`
	StolenBases    int    `json:"stolen_bases"`
	CaughtStealing int    `json:"caught_stealing"`
}

func newPlaysCommand(ctx *commandContext) *cobra.Command {
	var (
		teamFlag string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "plays [file]",
		Short: "List classified plays without building the grid",
		Long: "Plays shows what the classifier made of each retained plate appearance:\n" +
			"the inning, the lineup batter it is credited to, the play clause, the\n" +
			"resolved shorthand, and any RBI or baserunning counts. Useful for checking\n" +
			"a surprising cell in the rendered grid.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := newRunLogger(cmd, cfg, "plays")
			if err != nil {
				return err
			}

			team, err := resolveTeam(cmd, teamFlag, cfg.Scorebook.Team)
			if err != nil {
				return err
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
			events := scorebook.Events(game.TeamRows(team), game.Substitutions)

			logger.Info("plays classified",
				logging.String(logging.FieldTeam, team),
				logging.String(logging.FieldSource, source),
				logging.Int(logging.FieldPlays, len(events)),
			)

			views := make([]playView, 0, len(events))
			for _, event := range events {
				views = append(views, playView{
					Inning:         event.Inning,
					Batter:         titleCaser.String(event.Batter),
					Play:           event.Clause,
					Shorthand:      event.Shorthand,
					RBI:            event.RBI,
					StolenBases:    len(event.Steals),
					CaughtStealing: len(event.Caught),
				})
			}

			if asJSON {
				return writeJSON(cmd, views)
			}
			if len(views) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No plays for %s\n", team)
				return nil
			}

			headers := []string{"Inn", "Batter", "Play", "Shorthand", "RBI", "SB", "CS"}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					strconv.Itoa(view.Inning),
					view.Batter,
					view.Play,
					view.Shorthand,
					strconv.Itoa(view.RBI),
					strconv.Itoa(view.StolenBases),
					strconv.Itoa(view.CaughtStealing),
				})
			}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out, cfg.Output.Color)))
			return nil
		},
	}

	cmd.Flags().StringVar(&teamFlag, "team", "", "Target team code, e.g. MIL (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the plays as a JSON array")
	return cmd
}
