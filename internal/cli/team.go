package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team commands",
	}

	cmd.AddCommand(newTeamAddCmd())
	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamSubmitCmd())
	cmd.AddCommand(newTeamProgressCmd())

	return cmd
}

func newTeamAddCmd() *cobra.Command {
	var name string
	var memberIDs []int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Admit a team of registered participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":       name,
				"member_ids": memberIDs,
			}
			var result Team

			if err := client.Post(withDate("/api/v1/event/teams"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Team name (required)")
	cmd.Flags().IntSliceVar(&memberIDs, "members", nil, "Member participant IDs (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("members")

	return cmd
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List admitted teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Team

			if err := client.Get("/api/v1/event/teams", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamSubmitCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "submit <id>",
		Short: "Submit a document for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}

			req := map[string]string{"content": content}
			var result DocumentReview

			path := fmt.Sprintf("/api/v1/event/teams/%d/documents", id)
			if err := client.Post(withDate(path), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Document content (required)")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newTeamProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id>",
		Short: "Show a team's submission progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}

			var result ProgressResult

			if err := client.Get(fmt.Sprintf("/api/v1/event/teams/%d/progress", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result.Summary)
			return nil
		},
	}
}
