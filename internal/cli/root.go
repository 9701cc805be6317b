package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "hackctl",
		Short: "CLI tool for the hackfest API",
		Long: `hackctl is a CLI tool for running a hackathon through the hackfest JSON API.

It covers the whole event lifecycle: organizer accounts, event setup, judge and
participant management, team admission, document submission, and final voting.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load token from file if not provided via flag/env
			if err := cfg.LoadToken(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Token)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: HACKFEST_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Session token (env: HACKFEST_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: HACKFEST_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Date, "date", "", "Reference date YYYY-MM-DD (default: server clock)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newOrganizerCmd())
	rootCmd.AddCommand(newEventCmd())
	rootCmd.AddCommand(newJudgeCmd())
	rootCmd.AddCommand(newParticipantCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newVoteCmd())
	rootCmd.AddCommand(newRankingCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
