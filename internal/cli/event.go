package cli

import (
	"github.com/spf13/cobra"
)

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Event lifecycle commands",
	}

	cmd.AddCommand(newEventCreateCmd())
	cmd.AddCommand(newEventStatusCmd())
	cmd.AddCommand(newEventProblemCmd())
	cmd.AddCommand(newEventRegistrationsCmd())
	cmd.AddCommand(newEventSubmissionsCmd())

	return cmd
}

func newEventCreateCmd() *cobra.Command {
	var title, venue, start string
	var maxTeamSize int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the event",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"title":         title,
				"venue":         venue,
				"start_date":    start,
				"max_team_size": maxTeamSize,
			}
			var result map[string]string

			if err := client.Post("/api/v1/event", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&venue, "venue", "", "Event venue (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&maxTeamSize, "max-team-size", 4, "Maximum team size")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("venue")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newEventStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show event status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result EventStatus

			if err := client.Get(withDate("/api/v1/event"), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventProblemCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "problem",
		Short: "Publish the problem statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"text": text}

			if err := client.Put(withDate("/api/v1/event/problem"), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Problem published")
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Problem statement (required)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newEventRegistrationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registrations",
		Short: "Open or close registrations",
	}

	cmd.AddCommand(newFlagCmd("open", "Open registrations", "/api/v1/event/registrations/open", "Registrations opened"))
	cmd.AddCommand(newFlagCmd("close", "Close registrations", "/api/v1/event/registrations/close", "Registrations closed"))

	return cmd
}

func newEventSubmissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "Enable or disable document submissions",
	}

	cmd.AddCommand(newFlagCmd("enable", "Enable submissions", "/api/v1/event/submissions/enable", "Submissions enabled"))
	cmd.AddCommand(newFlagCmd("disable", "Disable submissions", "/api/v1/event/submissions/disable", "Submissions disabled"))

	return cmd
}

// newFlagCmd builds a command that toggles one of the operator flags
func newFlagCmd(use, short, path, message string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(withDate(path), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(message)
			return nil
		},
	}
}
