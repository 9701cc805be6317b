package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Final voting commands",
	}

	cmd.AddCommand(newVoteCastCmd())
	cmd.AddCommand(newVoteSimulateCmd())

	return cmd
}

func newVoteCastCmd() *cobra.Command {
	var judgeID, teamID, score int

	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Record a judge's final vote for a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"judge_id": judgeID,
				"team_id":  teamID,
				"score":    score,
			}

			if err := client.Post(withDate("/api/v1/event/votes"), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Vote recorded")
			return nil
		},
	}

	cmd.Flags().IntVar(&judgeID, "judge", 0, "Judge ID (required)")
	cmd.Flags().IntVar(&teamID, "team", 0, "Team ID (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Score 0-10 (required)")
	_ = cmd.MarkFlagRequired("judge")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newVoteSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Fill in every missing judge vote with a random score",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SimulateResult

			if err := client.Post(withDate("/api/v1/event/votes/simulate"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Filled %d missing votes", result.Filled))
			return nil
		},
	}
}

func newRankingCmd() *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the final ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if report {
				var result ReportResult
				if err := client.Get(withDate("/api/v1/event/ranking/report"), &result); err != nil {
					return err
				}
				out.PrintMessage(result.Report)
				return nil
			}

			var result []TeamScore
			if err := client.Get(withDate("/api/v1/event/ranking"), &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "Print the formatted text report")

	return cmd
}
