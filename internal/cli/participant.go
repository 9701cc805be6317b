package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newJudgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Judging panel commands",
	}

	cmd.AddCommand(newPersonAddCmd("add", "Add a judge to the panel", "/api/v1/event/judges"))
	cmd.AddCommand(newPersonRemoveCmd("remove <id>", "Remove a judge from the panel", "/api/v1/event/judges"))
	cmd.AddCommand(newPersonListCmd("list", "List the judging panel", "/api/v1/event/judges"))

	return cmd
}

func newParticipantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participant",
		Short: "Participant registration commands",
	}

	cmd.AddCommand(newPersonAddCmd("register", "Register a participant", "/api/v1/event/participants"))
	cmd.AddCommand(newPersonRemoveCmd("remove <id>", "Remove a registered participant", "/api/v1/event/participants"))
	cmd.AddCommand(newPersonListCmd("list", "List registered participants", "/api/v1/event/participants"))

	return cmd
}

// newPersonAddCmd builds the shared add command for judges and participants
func newPersonAddCmd(use, short, path string) *cobra.Command {
	var id int
	var givenName, familyName, email string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"id":          id,
				"given_name":  givenName,
				"family_name": familyName,
				"email":       email,
			}
			var result Participant

			if err := client.Post(withDate(path), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Participant ID (required)")
	cmd.Flags().StringVar(&givenName, "given-name", "", "Given name (required)")
	cmd.Flags().StringVar(&familyName, "family-name", "", "Family name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("given-name")
	_ = cmd.MarkFlagRequired("family-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newPersonRemoveCmd(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}

			if err := client.Delete(fmt.Sprintf("%s/%d", path, id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Removed")
			return nil
		},
	}
}

func newPersonListCmd(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Participant

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
