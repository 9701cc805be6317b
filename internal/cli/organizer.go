package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrganizerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organizer",
		Short: "Organizer account commands",
	}

	cmd.AddCommand(newOrganizerRegisterCmd())
	cmd.AddCommand(newOrganizerLoginCmd())
	cmd.AddCommand(newOrganizerLogoutCmd())
	cmd.AddCommand(newOrganizerMeCmd())

	return cmd
}

func newOrganizerRegisterCmd() *cobra.Command {
	var id int
	var name, surname, pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new organizer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"id":       id,
				"name":     name,
				"surname":  surname,
				"password": pass,
			}
			var result AuthResult

			if err := client.Post("/api/v1/organizers/register", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Organizer ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "Name (required)")
	cmd.Flags().StringVar(&surname, "surname", "", "Surname")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newOrganizerLoginCmd() *cobra.Command {
	var name, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":     name,
				"password": pass,
			}
			var result AuthResult

			if err := client.Post("/api/v1/organizers/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newOrganizerLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/organizers/logout", nil, nil); err != nil {
				return err
			}

			// Clear the saved token
			if err := cfg.SaveToken(""); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newOrganizerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show current organizer info",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Organizer

			if err := client.Get("/api/v1/organizers/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
